package handlers

import "net/http"

// getParam returns a route parameter. pat stores captures in the query
// string under ":name"; a plain "name" query value is accepted as well.
func getParam(r *http.Request, name string) string {
	query := r.URL.Query()
	if val := query.Get(":" + name); val != "" {
		return val
	}
	return query.Get(name)
}
