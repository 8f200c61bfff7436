package mux

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const maxRows = 100
const defaultRows = 100

func parsePaginationOptions(r *http.Request) (int64, int, error) {
	start := int64(0)
	rows := defaultRows

	if startStr := r.FormValue("start"); startStr != "" {
		val, err := strconv.ParseInt(startStr, 10, 64)
		if err != nil {
			return 0, 0, err
		}

		if val < 0 {
			return 0, 0, errors.New("start cannot be less than zero")
		}

		start = val
	}

	if rowsStr := r.FormValue("rows"); rowsStr != "" {
		val, err := strconv.Atoi(rowsStr)
		if err != nil {
			return 0, 0, err
		}

		if val <= 0 {
			return 0, 0, errors.New("rows must be greater than zero")
		}

		if val > maxRows {
			return 0, 0, fmt.Errorf("rows cannot be greater than %d", maxRows)
		}

		rows = val
	}

	return start, rows, nil
}

func remoteAddr(r *http.Request) string {
	parts := strings.Split(r.RemoteAddr, ":")
	if len(parts) == 1 {
		return parts[0]
	}

	return strings.Join(parts[0:len(parts)-1], ":")
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
