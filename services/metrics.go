// Package services: services/metrics.go
package services

import (
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"sapf-site/logger"
)

// Namespace for all site metrics
var metricsNamespace = "SAPFSite"

var (
	cwOnce   sync.Once
	cwClient *cloudwatch.CloudWatch
)

// metricsEnabled gates all CloudWatch calls; off unless METRICS_ENABLED=true.
func metricsEnabled() bool {
	return os.Getenv("METRICS_ENABLED") == "true"
}

// PublishPageRender counts a successful page render
func PublishPageRender(page string) {
	putMetric("PageRenders", 1, "Count", page)
}

// PublishContentLoadFailure counts an aborted render due to a content load failure
func PublishContentLoadFailure(page string) {
	putMetric("ContentLoadFailures", 1, "Count", page)
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func putMetric(metricName string, value float64, unit string, page string) {
	if !metricsEnabled() {
		return
	}
	cwOnce.Do(func() {
		cwClient = cloudwatch.New(session.Must(session.NewSession()))
	})

	_, err := cwClient.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Dimensions: []*cloudwatch.Dimension{
					{
						Name:  aws.String("Page"),
						Value: aws.String(page),
					},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
