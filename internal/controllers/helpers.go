package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// pathID extracts a numeric path variable. The route patterns already
// constrain the variable to digits, so failure here means a routing bug.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
