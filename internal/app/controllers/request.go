package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"pdrims-http-service/internal/app/middleware"
	"pdrims-http-service/internal/domain/services"
	"pdrims-http-service/internal/error/code"
	"pdrims-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// FlexibleInt accepts a JSON number or a numeric string. Empty strings and
// null decode to no value.
type FlexibleInt struct {
	Value *int
}

type fieldDecodeError struct {
	message string
}

func (e *fieldDecodeError) Error() string { return e.message }

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		f.Value = nil
		return nil
	}

	text := string(trimmed)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return &fieldDecodeError{message: "must be a whole number"}
		}
		text = strings.TrimSpace(s)
		if text == "" {
			f.Value = nil
			return nil
		}
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return &fieldDecodeError{message: "must be a whole number"}
	}
	f.Value = &n
	return nil
}

func (f FlexibleInt) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(*f.Value)), nil
}

// flexibleIntFields are the request fields decoded with FlexibleInt.
var flexibleIntFields = []string{"head_age", "age"}

// bindJSON decodes the body into req. On failure it writes a 400 naming the
// offending field where one can be found, and returns false.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindBodyWith(req, binding.JSON)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	var fieldErr *fieldDecodeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		response.ValidationFailed(c, map[string]string{typeErr.Field: "has the wrong type, expected " + typeErr.Type.String()})
	case errors.As(err, &fieldErr):
		response.ValidationFailed(c, map[string]string{flexibleIntField(c): fieldErr.message})
	case errors.Is(err, services.ErrFamilyMembersNotArray):
		response.ValidationFailed(c, map[string]string{"family_members": "must be a JSON array"})
	case errors.Is(err, io.EOF):
		response.FailWithMessage(c, code.ErrBind, "request body is required")
	default:
		response.Fail(c, code.ErrBind)
	}
	return false
}

// flexibleIntField finds which FlexibleInt field of the cached body failed.
// encoding/json does not annotate errors returned by UnmarshalJSON.
func flexibleIntField(c *gin.Context) string {
	raw, ok := c.Get(gin.BodyBytesKey)
	body, _ := raw.([]byte)
	var fields map[string]json.RawMessage
	if ok && json.Unmarshal(body, &fields) == nil {
		for _, name := range flexibleIntFields {
			value, present := fields[name]
			if !present {
				continue
			}
			var probe FlexibleInt
			if probe.UnmarshalJSON(value) != nil {
				return name
			}
		}
	}
	return flexibleIntFields[0]
}

// bindOptionalJSON decodes a body that may be absent.
func bindOptionalJSON(c *gin.Context, req interface{}) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	response.Fail(c, code.ErrBind)
	return false
}

// actorName resolves who performed an operation: the name given in the body,
// else the authenticated user's display name.
func actorName(c *gin.Context, bodyName string) string {
	if name := strings.TrimSpace(bodyName); name != "" {
		return name
	}
	if user := middleware.CurrentUser(c); user != nil {
		return user.DisplayName()
	}
	return ""
}

// parseUintParam reads a positive integer path parameter.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.ValidationFailed(c, map[string]string{name: "must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
