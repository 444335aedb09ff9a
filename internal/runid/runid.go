// Package runid tags one process run so its log lines can be grouped.
package runid

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const prefix = "run-"

func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("%s%d", prefix, time.Now().UTC().UnixNano())
	}
	return prefix + id.String()
}
