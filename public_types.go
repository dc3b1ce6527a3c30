package telvora

import "github.com/telvora/telvora-go/internal/types"

// Public type aliases so SDK consumers can import only the telvora package.
type (
	// Payload is a decoded JSON object as returned by the remote API.
	Payload = types.Payload
	// Filters holds query-string parameters for list endpoints.
	Filters = types.Filters

	// Requests
	LoginRequest        = types.LoginRequest
	RefreshRequest      = types.RefreshRequest
	UpdateNumberRequest = types.UpdateNumberRequest

	// BulkContacts selects between file-upload and inline-JSON submission
	// for AddBulkContacts.
	BulkContacts = types.BulkContacts
)

// BulkContactsFile uploads the file at path as a multipart attachment.
func BulkContactsFile(path string) BulkContacts { return types.BulkContactsFile(path) }

// BulkContactsData submits data as the JSON request body. data may be a
// mapping or a list, as accepted by the remote endpoint.
func BulkContactsData(data any) BulkContacts { return types.BulkContactsData(data) }
