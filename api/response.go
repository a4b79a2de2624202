package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentKind selects the response encoding. Handlers pick the kind
// explicitly; the encoder never infers it from the payload shape.
type ContentKind string

const (
	KindJSON    ContentKind = "json"
	KindHTML    ContentKind = "html"
	KindFavicon ContentKind = "favicon"
	KindCSS     ContentKind = "css"
	KindPNG     ContentKind = "png"
	KindJPG     ContentKind = "jpg"
	KindPlain   ContentKind = "plain"
)

// MIME returns the single Content-Type header value set for the kind.
func (k ContentKind) MIME() string {
	switch k {
	case KindHTML:
		return "text/html"
	case KindFavicon:
		return "image/x-icon"
	case KindCSS:
		return "text/css"
	case KindPNG:
		return "image/png"
	case KindJPG:
		return "image/jpeg"
	case KindPlain:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Response is what a handler resolves on success. The zero value
// encodes as 200 with an empty JSON object.
type Response struct {
	Status  int
	Payload any
	Kind    ContentKind
}

func writeResponse(c *gin.Context, resp *Response) {
	if resp == nil {
		resp = &Response{}
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}

	if resp.Kind == "" || resp.Kind == KindJSON {
		payload := resp.Payload
		if payload == nil {
			payload = gin.H{}
		}

		c.JSON(status, payload)
		return
	}

	c.Data(status, resp.Kind.MIME(), rawBytes(resp.Payload))
}

// rawBytes passes non-JSON payloads through verbatim.
func rawBytes(v any) []byte {
	switch b := v.(type) {
	case []byte:
		return b
	case string:
		return []byte(b)
	default:
		return nil
	}
}
