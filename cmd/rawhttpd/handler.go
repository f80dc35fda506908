package main

import (
	"encoding/json"
	"errors"
	"github.com/oesand/rawhttp"
	"github.com/oesand/rawhttp/specs"
	"html"
)

const indexPage = `<html><head><title>rawhttpd</title></head><body><h1>It works</h1></body></html>`

type greeting struct {
	Message string `json:"message"`
}

// route is the demo application: an index page, a JSON greeting, a body
// echo and 404 elsewhere.
func route(req *rawhttp.Request) rawhttp.Response {
	switch req.Path.Uri {
	case "/":
		if req.Method != specs.HttpMethodGet && req.Method != specs.HttpMethodHead {
			return rawhttp.Empty().Status(specs.StatusNotAllowed)
		}
		return rawhttp.Html(indexPage)
	case "/hello":
		name, ok := req.Path.QueryValue("name")
		if !ok || name == "" {
			name = "world"
		}
		body, err := json.Marshal(greeting{Message: "hello, " + name})
		if err != nil {
			return rawhttp.Empty().Status(specs.StatusInternalServerError)
		}
		return rawhttp.Json(string(body))
	case "/home":
		return rawhttp.Redirect("/")
	case "/echo":
		if !req.Method.IsPostable() {
			return rawhttp.Empty().Status(specs.StatusNotAllowed)
		}
		return rawhttp.Content(req.Body, specs.ContentTypePlain)
	}
	return rawhttp.Html("<h1>" + html.EscapeString(req.Path.Uri) + " not found</h1>").
		Status(specs.StatusNotFound)
}

func errorResponse(err error) rawhttp.Response {
	status := specs.StatusBadRequest
	if errors.Is(err, specs.ErrInvalidMethod) {
		status = specs.StatusNotAllowed
	}
	var perr specs.Error
	message := err.Error()
	if errors.As(err, &perr) {
		message = perr.Message
	}
	return rawhttp.Content(message, specs.ContentTypePlain).Status(status)
}
