package rawhttp

import (
	"fmt"
	"github.com/oesand/rawhttp/internal/encoding"
	"github.com/oesand/rawhttp/specs"
	"strconv"
)

// Empty returns a 200 OK response without headers or content.
func Empty() Response {
	return Response{
		scheme:  DefaultScheme,
		version: DefaultVersion,
		status:  specs.StatusOk,
	}
}

// Body returns a 200 OK response carrying content verbatim. No headers are added.
func Body(content string) Response {
	resp := Empty()
	resp.content = content
	return resp
}

// Content is Body followed by Content-Type and Content-Length headers, in
// that order. The length is the byte length of content.
func Content(content, contentType string) Response {
	return Body(content).
		Header(specs.NewHeader("Content-Type", contentType)).
		Header(specs.NewHeader("Content-Length", strconv.Itoa(len(content))))
}

func Html(content string) Response {
	return Content(content, specs.ContentTypeHTML)
}

func Json(content string) Response {
	return Content(content, specs.ContentTypeJson)
}

// Redirect returns a 303 SEE OTHER response pointing at location.
func Redirect(location string) Response {
	return Empty().
		Status(specs.StatusSeeOther).
		Header(specs.NewHeader("Location", location))
}

// EncodedContent compresses content with contentEncoding and adds
// Content-Type, Content-Encoding and Content-Length headers. The length
// is that of the compressed content.
func EncodedContent(content, contentType, contentEncoding string) (Response, error) {
	if !specs.IsKnownEncoding(contentEncoding) {
		return Response{}, fmt.Errorf("rawhttp/response: unknown content encoding %q", contentEncoding)
	}
	encoded, err := encoding.Encode(contentEncoding, content)
	if err != nil {
		return Response{}, err
	}

	return Body(encoded).
		Header(specs.NewHeader("Content-Type", contentType)).
		Header(specs.NewHeader("Content-Encoding", contentEncoding)).
		Header(specs.NewHeader("Content-Length", strconv.Itoa(len(encoded)))), nil
}
