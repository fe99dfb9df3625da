package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TweetsCreated counts created tweets by entry mode ("explicit" or "inline").
	TweetsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_tweets_created_total",
		Help: "Total number of tweets created, by tagging entry mode",
	}, []string{"mode"})

	// TaggingsCreated counts persisted tagging rows.
	TaggingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chirp_taggings_created_total",
		Help: "Total number of tagging rows created",
	})

	// TaggingsSkipped counts tag candidates dropped during resolution, by
	// reason ("not_found" or "duplicate").
	TaggingsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_taggings_skipped_total",
		Help: "Total number of tag candidates skipped, by reason",
	}, []string{"reason"})
)
