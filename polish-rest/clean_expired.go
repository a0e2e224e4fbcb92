package main

import (
	"log"

	"github.com/tevino/abool/v2"
)

var cleanRunning = abool.NewBool(false)

// / cleanTask soft-deletes cached entries whose expiry has passed. Runs that
// / overlap a running clean return at once.
func cleanTask() int {
	if !cleanRunning.SetToIf(false, true) {
		return 0
	}
	defer cleanRunning.UnSet()
	expired, err := FindExpiredEntriesWithLimit(2000)
	if err != nil {
		log.Println(err)
		return 0
	}
	if len(expired) == 0 {
		return 0
	}
	ids := make([]int64, 0, len(expired))
	for _, entry := range expired {
		ids = append(ids, entry.ID)
	}
	if err := DeleteEntries(ids); err != nil {
		log.Println(err)
		return 0
	}
	log.Printf("cleaned %d expired entries", len(ids))
	return len(ids)
}
