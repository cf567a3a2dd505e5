package observability

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

func (p *Prom) ObserveDB(op string, fn func() error) error {
	start := time.Now()
	err := fn()

	status := "ok"

	if err != nil {
		status = "error"
		p.DbErrorsTotal.WithLabelValues(op, classifyDBErr(err)).Inc()
	}
	p.DbQueryDuration.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
	return err
}

func classifyDBErr(err error) string {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "no_documents"
	}

	if mongo.IsDuplicateKeyError(err) {
		return "duplicate_key"
	}

	if mongo.IsTimeout(err) {
		return "timeout"
	}

	if mongo.IsNetworkError(err) {
		return "network"
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return "cmd_" + cmdErr.Name
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "deadline"):
		return "timeout"
	case strings.Contains(msg, "connection"):
		return "connection"
	default:
		return "unknown"
	}
}
