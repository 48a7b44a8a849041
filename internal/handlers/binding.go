package handlers

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// BindNestedOrFlat binds the body to obj whether the client sent the
// payload flat ({...}) or wrapped under key ({"payable": {...}}). Numbers
// decode as json.Number so amounts keep their exact decimal digits.
func BindNestedOrFlat(c *gin.Context, key string, obj interface{}) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	// later binders read the body again
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		if inner, ok := envelope[key]; ok {
			body = inner
		}
	}
	return decodeNumbers(body, obj)
}

func decodeNumbers(data []byte, obj interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(obj)
}
