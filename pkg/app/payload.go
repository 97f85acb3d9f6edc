package app

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/rbuck/txtcodec/pkg/encoding"
)

// DecodedPayload is the wire format for decode --output json.
type DecodedPayload struct {
	Codec   string `json:"codec"`
	Input   string `json:"input"`
	Size    int    `json:"size"`
	Payload any    `json:"payload"`
}

// RenderDecoded formats a decoded payload according to the output format.
// Problems that still allow output are reported on stderr.
func (a *App) RenderDecoded(codecName string, input, decoded []byte, stderr *bytes.Buffer, outputFmt OutputFormat) []byte {
	display := decoded
	if a.DecodeMsgPack {
		var obj any
		if err := msgpack.Unmarshal(decoded, &obj); err != nil {
			fmt.Fprintf(stderr, "could not decode msgpack data: %v\n", err)
		} else if b, err := json.Marshal(obj); err != nil {
			fmt.Fprintf(stderr, "could not decode msgpack data: %v\n", err)
		} else {
			display = b
		}
	}

	switch outputFmt {
	case OutputFormatRaw:
		return decoded
	case OutputFormatHex:
		hex, _ := encoding.EncodeBase16(decoded)
		return hex
	case OutputFormatJSON:
		jsonToDisplay, err := json.Marshal(DecodedPayload{
			Codec:   codecName,
			Input:   string(input),
			Size:    len(decoded),
			Payload: FormatJSON(display),
		})
		if err != nil {
			fmt.Fprintf(stderr, "could not encode JSON data: %v", err)
		}
		return jsonToDisplay
	default:
		if IsJSON(display) {
			if a.CompactJSON {
				return a.FormatKey(display)
			}
			return FormatValue(display)
		}
		return display
	}
}

// FormatKey pretty-prints JSON using the compact formatter.
func (a *App) FormatKey(key []byte) []byte {
	if b, err := a.Keyfmt.Format(key); err == nil {
		return b
	}
	return key
}
