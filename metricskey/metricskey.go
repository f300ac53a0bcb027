package metricskey

import "github.com/effective-security/metrics"

// Perf
var (
	// PerfTokenSign is perf metric for producing token signatures
	PerfTokenSign = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_token_sign",
		Help:         "perf_token_sign provides the sample metrics of token signing",
		RequiredTags: []string{"alg"},
	}

	// PerfTokenVerify is perf metric for checking token signatures
	PerfTokenVerify = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_token_verify",
		Help:         "perf_token_verify provides the sample metrics of signature verification",
		RequiredTags: []string{"alg"},
	}
)

// Metrics returns slice of metrics from this repo
var Metrics = []*metrics.Describe{
	&PerfTokenSign,
	&PerfTokenVerify,
}
