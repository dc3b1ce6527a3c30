package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/telvora/telvora-go/internal/types"
)

func TestPhoneListEndpoints(t *testing.T) {
	t.Parallel()
	es := newEchoServer(t)

	if _, err := ActiveBrokerPhones(context.Background(), es.srv.Client(), es.srv.URL); err != nil {
		t.Fatalf("ActiveBrokerPhones error: %v", err)
	}
	if es.method != http.MethodGet || es.path != "/active-broker-phone/" {
		t.Errorf("expected GET /active-broker-phone/, got %s %s", es.method, es.path)
	}

	if _, err := ActiveUserPhones(context.Background(), es.srv.Client(), es.srv.URL); err != nil {
		t.Fatalf("ActiveUserPhones error: %v", err)
	}
	if es.method != http.MethodGet || es.path != "/phone-number/active/" {
		t.Errorf("expected GET /phone-number/active/, got %s %s", es.method, es.path)
	}
}

func TestUpdateContactNumber_PathAndBody(t *testing.T) {
	t.Parallel()
	es := newEchoServer(t)

	if _, err := UpdateContactNumber(context.Background(), es.srv.Client(), es.srv.URL, 31, types.UpdateNumberRequest{Number: "+15550009999"}); err != nil {
		t.Fatalf("UpdateContactNumber error: %v", err)
	}
	if es.method != http.MethodPatch || es.path != "/phone-number/update/31/" {
		t.Errorf("expected PATCH /phone-number/update/31/, got %s %s", es.method, es.path)
	}
	var sent map[string]string
	if err := json.Unmarshal(es.body, &sent); err != nil || sent["number"] != "+15550009999" {
		t.Errorf("unexpected body: %s (err=%v)", es.body, err)
	}
}

func TestDeleteContact_Path(t *testing.T) {
	t.Parallel()
	es := newEchoServer(t)

	if _, err := DeleteContact(context.Background(), es.srv.Client(), es.srv.URL, 31); err != nil {
		t.Fatalf("DeleteContact error: %v", err)
	}
	if es.method != http.MethodDelete || es.path != "/phone-number/delete/31/" {
		t.Errorf("expected DELETE /phone-number/delete/31/, got %s %s", es.method, es.path)
	}
}
