// Package doc defines the output structure produced by outline detection.
package doc

// Structure is the final result for one document.
type Structure struct {
	Title   string    `json:"title,omitempty"` // empty when no title was detected
	Outline []Heading `json:"outline"`
}

// Heading is one entry in the document outline.
type Heading struct {
	Level string `json:"level"` // "H1", "H2" or "H3"
	Text  string `json:"text"`
	Page  int    `json:"page"` // 1-based
}
