package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess     = "success"
	outcomeFailure     = "failure"
	outcomePlaceholder = "placeholder"
)

var postsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ccraft_posts_generated_total",
	Help: "Posts generated, labeled by platform and outcome.",
}, []string{"platform", "outcome"})
