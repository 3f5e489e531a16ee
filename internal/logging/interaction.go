package logging

import (
	"fmt"
	"time"
)

// Interaction records one answered query in the interaction log. It is written
// regardless of debug mode, once per successfully completed query/response pair.
func Interaction(query, response string) {
	loggersMu.RLock()
	l := interaction
	loggersMu.RUnlock()

	l.Info(fmt.Sprintf("Time: %s, User Query: %s, AI Response: %s",
		time.Now().Format("2006-01-02 15:04:05.000000"), query, response))
}
