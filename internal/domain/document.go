package domain

// FileType identifies the source format of a loaded document.
type FileType string

const (
	FileTypeText     FileType = "text"
	FileTypePDF      FileType = "pdf"
	FileTypeDocx     FileType = "docx"
	FileTypeExcel    FileType = "excel"
	FileTypeCSV      FileType = "csv"
	FileTypeJSON     FileType = "json"
	FileTypeHTML     FileType = "html"
	FileTypeMarkdown FileType = "markdown"
	FileTypeXML      FileType = "xml"
)

// Document is a single file loaded into the system. Immutable after load.
type Document struct {
	ID     string // filename stem, stable across runs
	Text   string
	Source string // path the document was loaded from
	Type   FileType
}

// Chunk is one sentence of a document, the unit of retrieval.
// ChunkID values are dense and sequential within a document, starting at 0.
type Chunk struct {
	DocID   string
	ChunkID int
	Text    string
	Source  string
}

// Payload is the metadata stored alongside a vector in the index.
// It reproduces the chunk it was built from exactly.
type Payload struct {
	Text    string
	DocID   string
	ChunkID int
	Source  string
}

// Point is a single indexed entry: a stable identity, a vector and its payload.
type Point struct {
	ID      string
	Vector  []float32
	Payload Payload
}

// SearchResult is a scored payload returned by a similarity query.
// Result lists are ordered by descending score; equal scores keep
// insertion order.
type SearchResult struct {
	Score   float32
	Payload Payload
}
