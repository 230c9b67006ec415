package httperr

import (
	"hotel-portal/internal/domain/access"
	"hotel-portal/internal/usecase/notice"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message    string `json:"message"`
		RedirectTo string `json:"redirectTo,omitempty"`
		Reason     string `json:"reason,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	abort(c, err, resp)
}

// AbortWithUseCaseError answers with the notification a usecase resolved for err.
func AbortWithUseCaseError(c *gin.Context, err error) {
	AbortWithError(c, notice.StatusOf(err), err, notice.Describe(err, notice.Default), nil)
}

// AbortDenied answers a failed guard check. The browser follows RedirectTo.
func AbortDenied(c *gin.Context, status int, d access.Decision) {
	resp := Response{Status: status}
	resp.Error.Message = deniedMessage(d.Reason)
	resp.Error.RedirectTo = d.RedirectTo
	resp.Error.Reason = d.Reason
	abort(c, errDenied{reason: d.Reason}, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

type errDenied struct {
	reason string
}

func (e errDenied) Error() string { return "access denied: " + e.reason }

func deniedMessage(reason string) string {
	switch reason {
	case access.ReasonLogin:
		return "Please log in to continue."
	case access.ReasonModuleDisabled:
		return "This feature is currently disabled."
	case access.ReasonAdminOnly:
		return "Only administrators can open this page."
	case access.ReasonCleanerOnly:
		return "Only cleaning staff can open this page."
	default:
		return "Access denied."
	}
}
