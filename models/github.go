package models

// ContentsFile is the subset of a contents API file object this library
// reads.
type ContentsFile struct {
	Name    string `json:"name,omitempty"`
	Path    string `json:"path,omitempty"`
	SHA     string `json:"sha"`
	Size    int64  `json:"size,omitempty"`
	HTMLURL string `json:"html_url,omitempty"`
}

// Commit is the commit part of a contents API write response.
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message,omitempty"`
	HTMLURL string `json:"html_url,omitempty"`
}

// PutContentsRequest is the body of a contents API create-or-update call.
// SHA must be empty when creating the file.
type PutContentsRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
	Branch  string `json:"branch"`
}

// WriteResult is the host's response to a successful write.
type WriteResult struct {
	Content ContentsFile `json:"content"`
	Commit  Commit       `json:"commit"`
}

// APIErrorBody is the error payload returned by the contents API.
type APIErrorBody struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url,omitempty"`
}
