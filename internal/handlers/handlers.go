package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func SendJSON(w http.ResponseWriter, status int, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return w.Write(payload)
}

func sendJSONOrLog(
	w http.ResponseWriter,
	log logrus.FieldLogger,
	status int,
	v any,
) {
	if _, err := SendJSON(w, status, v); err != nil {
		log.WithError(err).WithField("response", v).Error("unable to send response")
	}
}

func sendErrorOrLog(
	w http.ResponseWriter,
	log logrus.FieldLogger,
	status int,
	e error,
) {
	sendJSONOrLog(w, log, status, wrapError(e))
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
