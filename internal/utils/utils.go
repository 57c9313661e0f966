package utils

import log "github.com/sirupsen/logrus"

func Must(e error) {
	if e != nil {
		log.Fatal(e)
	}
}
