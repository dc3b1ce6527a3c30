package types

// BulkContacts selects between the two submission shapes accepted by the
// bulk-contact endpoint: a multipart file upload or an inline JSON payload.
// Construct values with BulkContactsFile or BulkContactsData; the zero value
// submits an empty JSON body.
type BulkContacts struct {
	filePath string
	data     any
}

// BulkContactsFile uploads the file at path as a multipart attachment.
func BulkContactsFile(path string) BulkContacts {
	return BulkContacts{filePath: path}
}

// BulkContactsData submits data as the JSON request body. data may be a
// mapping or a list, as accepted by the remote endpoint.
func BulkContactsData(data any) BulkContacts {
	return BulkContacts{data: data}
}

// FilePath returns the upload path and whether this is the file variant.
func (b BulkContacts) FilePath() (string, bool) {
	return b.filePath, b.filePath != ""
}

// Data returns the inline payload for the JSON variant.
func (b BulkContacts) Data() any { return b.data }
