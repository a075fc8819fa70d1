// Copyright (c) 2026 Advora. All rights reserved.

/*
Package respond provides HTTP response helpers used by all API handlers.

# Architecture

This package centralizes the presentation logic for HTTP responses.
It ensures that every response (Success or Error) across the entire application
follows a strict, predictable JSON envelope structure. This consistency is
crucial for frontend SPAs to parse data robustly.

# Envelope Contract

Callers only ever see two shapes: a success envelope (possibly with an empty
data array and zeroed pagination) or a failure envelope carrying an error code
and message with a non-2xx status.
*/
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fk-solace/advora/internal/platform/apperr"
	"github.com/fk-solace/advora/internal/platform/ctxutil"
	"github.com/fk-solace/advora/pkg/pagination"
)

// SuccessEnvelope is the JSON envelope for successful single-resource responses.
type SuccessEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ListEnvelope is the JSON envelope for paginated list responses.
type ListEnvelope struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard success envelope.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Success: true, Data: data})
}

// Created writes a 201 Created response with data wrapped in the standard success envelope.
func Created(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Success: true, Data: data})
}

// List writes a 200 OK response with list data and a pagination metadata block.
func List(writer http.ResponseWriter, data interface{}, meta pagination.Meta) {
	JSON(writer, http.StatusOK, ListEnvelope{Success: true, Data: data, Pagination: meta})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client for security.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Success: false,
		Error:   appError.Code,
		Message: appError.Message,
		Details: appError.Details,
	})
}
