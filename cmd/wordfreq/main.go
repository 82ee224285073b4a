package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/maraigue/multiset"

	log "github.com/sirupsen/logrus"
)

const topN = 10

func main() {
	logger := log.WithFields(log.Fields{"app": "wordfreq"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(log.InfoLevel)
	corpus := multiset.New[string]()
	paths := os.Args[1:]
	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.WithError(err).Fatal("read stdin")
		}
		corpus.MergeInPlace(tokenize(string(data)))
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.WithError(err).WithField("file", path).Error("read failed")
			continue
		}
		words := tokenize(string(data))
		logger.WithFields(log.Fields{
			"file":     path,
			"words":    words.Size(),
			"distinct": words.DistinctSize(),
		}).Info("indexed")
		corpus.MergeInPlace(words)
	}
	byInitial := multiset.Classify(corpus, func(w string) rune {
		return []rune(w)[0]
	})
	logger.WithFields(log.Fields{
		"words":    corpus.Size(),
		"distinct": corpus.DistinctSize(),
		"initials": byInitial.Len(),
	}).Info("corpus ready")
	for i, e := range corpus.SortPairs(func(a, b string) bool {
		return corpus.Count(a) > corpus.Count(b)
	}) {
		if i >= topN {
			break
		}
		fmt.Printf("%6d %s\n", e.Count, e.Item)
	}
}

func tokenize(text string) *multiset.Multiset[string] {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return multiset.FromItems(words...)
}
