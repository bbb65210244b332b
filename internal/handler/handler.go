package handler

import (
	"context"
	"net/http"
)

// writeAction decodes and validates a REQ body, runs action and replies with
// its result. The response has been written when it returns.
func writeAction[REQ any, RES any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	status int,
	action func(context.Context, *REQ) (RES, error),
) {
	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	res, err := action(r.Context(), &req)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, status, res)
}

// writeActionByID is writeAction for routes addressed by an {id} path parameter.
func writeActionByID[REQ any, RES any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	status int,
	action func(context.Context, int, *REQ) (RES, error),
) {
	id, ok := pathID(w, r, ParamID)
	if !ok {
		return
	}
	writeAction(w, r, opName, status, func(ctx context.Context, req *REQ) (RES, error) {
		return action(ctx, id, req)
	})
}

// readByID serves GET routes addressed by an {id} path parameter.
func readByID[RES any](w http.ResponseWriter, r *http.Request, opName string, read func(context.Context, int) (RES, error)) {
	id, ok := pathID(w, r, ParamID)
	if !ok {
		return
	}
	res, err := read(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// deleteByID serves DELETE routes addressed by an {id} path parameter.
func deleteByID(w http.ResponseWriter, r *http.Request, opName string, del func(context.Context, int) error) {
	id, ok := pathID(w, r, ParamID)
	if !ok {
		return
	}
	if err := del(r.Context(), id); err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: MsgDeleted})
}
