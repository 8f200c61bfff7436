package mux

import (
	"net/http"
)

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		tables := m.pitBoss.Tables()
		if start > int64(len(tables)) {
			start = int64(len(tables))
		}

		tables = tables[start:]
		if len(tables) > rows {
			tables = tables[:rows]
		}

		writeJSON(w, http.StatusOK, tables)
	}
}
