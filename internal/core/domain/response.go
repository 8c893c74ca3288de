package domain

type Format string

const (
	FormatPlain    Format = ""
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

type FileKind string

const (
	FilePhoto    FileKind = "photo"
	FileDocument FileKind = "document"
)

type ResponseKind int

const (
	KindText ResponseKind = iota
	KindFile
	KindLocation
	KindDelete
)

// Response is one outgoing payload. Kind selects which of the variant fields
// are meaningful; use the constructors instead of filling the struct by hand.
type Response struct {
	Kind ResponseKind

	// KindText
	Segments []string
	Format   Format

	// KindFile
	FileKind FileKind
	FileURL  string

	// KindLocation
	Latitude  float64
	Longitude float64

	// KindDelete
	DeleteMessageID int
}

// Text builds a text response from one or more segments. Segments are the
// units the chunker is allowed to split between, so callers with formatting
// markup should pass one segment per markup-safe block.
func Text(format Format, segments ...string) Response {
	return Response{Kind: KindText, Format: format, Segments: segments}
}

func File(kind FileKind, url string) Response {
	return Response{Kind: KindFile, FileKind: kind, FileURL: url}
}

func Location(lat, lon float64) Response {
	return Response{Kind: KindLocation, Latitude: lat, Longitude: lon}
}

func Delete(messageID int) Response {
	return Response{Kind: KindDelete, DeleteMessageID: messageID}
}

// Body returns the concatenated text of a text response.
func (r Response) Body() string {
	body := ""
	for _, s := range r.Segments {
		body += s
	}
	return body
}

func (r Response) TextLen() int {
	n := 0
	for _, s := range r.Segments {
		n += len(s)
	}
	return n
}
