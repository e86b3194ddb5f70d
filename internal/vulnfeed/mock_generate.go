package vulnfeed

//go:generate mockgen -destination=./feed_mock_test.go -package=vulnfeed github.com/reachlab/depscan/internal/vulnfeed Feed,Enricher
