package response

import (
	"hotel-portal/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

type Page[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements"`
}

func mapPage[S, T any](p readmodel.Page[S], f func(S) T) Page[T] {
	return Page[T]{Content: mapSlice(p.Content, f), TotalElements: p.TotalElements}
}

func mapSlice[S, T any](in []S, f func(S) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

// copyFields fills the same-named fields of to from from. Nested views use
// other field names and are filled by hand.
func copyFields(to, from any) {
	if err := copier.Copy(to, from); err != nil {
		panic("response: " + err.Error())
	}
}
