package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager()

			Convey("Then it should use its own registry", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Registry(), ShouldNotBeNil)
				So(manager.Registry(), ShouldNotEqual, prometheus.DefaultRegisterer)
			})
		})

		Convey("When creating two managers", func() {
			Convey("Then registration should not collide", func() {
				So(func() {
					NewManager()
					NewManager()
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(
			WithNamespace("test"),
			WithSubsystem("crm"),
			WithHistogramBuckets([]float64{0.1, 0.5, 1}),
			WithPrometheusRegistry(registry),
		)

		Convey("When recording HTTP requests", func() {
			manager.ObserveHTTPRequest(http.MethodGet, "/v1/leads", http.StatusOK, 20*time.Millisecond)
			manager.ObserveHTTPRequest(http.MethodGet, "/v1/leads", http.StatusOK, 30*time.Millisecond)
			manager.ObserveHTTPRequest(http.MethodGet, "/qualquer/coisa", http.StatusNotFound, time.Millisecond)

			Convey("Then they should be counted per path", func() {
				So(testutil.ToFloat64(manager.httpRequests.WithLabelValues("/v1/leads", "GET", "200")), ShouldEqual, 2)
				So(testutil.ToFloat64(manager.httpRequests.WithLabelValues(unmatchedPath, "GET", "404")), ShouldEqual, 1)
			})
		})

		Convey("When recording dataset reloads", func() {
			manager.RecordDatasetReload("fixtures", time.Second, nil)
			manager.RecordDatasetReload("fixtures", time.Second, errors.New("falhou"))
			manager.RecordDatasetReload("fixtures", time.Second, nil)

			Convey("Then they should be counted by result", func() {
				So(testutil.ToFloat64(manager.datasetReloads.WithLabelValues("success")), ShouldEqual, 2)
				So(testutil.ToFloat64(manager.datasetReloads.WithLabelValues("failure")), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.datasetLastReload), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When recording region switches and unclassified records", func() {
			manager.RecordRegionSwitch(domain.RegionOslo, domain.RegionBergen)
			manager.RecordUnclassified("opportunities", domain.RegionOslo, 3)
			manager.RecordUnclassified("opportunities", domain.RegionOslo, 0)

			Convey("Then they should be counted", func() {
				So(testutil.ToFloat64(manager.regionSwitches.WithLabelValues("Oslo", "Bergen")), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.unclassifiedRecords.WithLabelValues("opportunities", "Oslo")), ShouldEqual, 3)
			})
		})

		Convey("When applying two renewal digests in a row", func() {
			manager.SetRenewalDigest(&domain.RenewalDigest{
				Region:      domain.RegionBergen,
				AtRiskValue: 800000,
				Entries: []domain.RenewalDigestEntry{
					{Urgency: domain.UrgencyOverdue, Count: 2, Value: 550000},
					{Urgency: domain.UrgencyDueThisMonth, Count: 1, Value: 320000},
				},
			})
			manager.SetRenewalDigest(&domain.RenewalDigest{
				Region: domain.RegionBergen,
				Entries: []domain.RenewalDigestEntry{
					{Urgency: domain.UrgencyDueThisMonth, Count: 4, Value: 100},
				},
			})

			Convey("Then buckets missing from the last digest should be zeroed", func() {
				So(testutil.ToFloat64(manager.renewalBucketCount.WithLabelValues("Bergen", "Overdue")), ShouldEqual, 0)
				So(testutil.ToFloat64(manager.renewalBucketCount.WithLabelValues("Bergen", "Due This Month")), ShouldEqual, 4)
				So(testutil.ToFloat64(manager.renewalAtRiskValue.WithLabelValues("Bergen")), ShouldEqual, 0)
			})
		})

		Convey("When scraping the handler", func() {
			manager.RecordRegionSwitch(domain.RegionBergen, domain.RegionOslo)
			rec := httptest.NewRecorder()
			manager.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			Convey("Then the exposition should contain the metrics", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, "test_crm_region_switches_total")
				So(rec.Body.String(), ShouldNotContainSubstring, "go_goroutines")
			})
		})
	})
}

func TestDisabledManager(t *testing.T) {
	Convey("Given a disabled manager", t, func() {
		manager := NewManager(WithMetricsEnabled(false))

		Convey("When recording", func() {
			manager.RecordRegionSwitch(domain.RegionOslo, domain.RegionBergen)

			Convey("Then nothing should be counted", func() {
				So(testutil.ToFloat64(manager.regionSwitches.WithLabelValues("Oslo", "Bergen")), ShouldEqual, 0)
			})
		})

		Convey("When the manager is nil", func() {
			var nilManager *Manager

			Convey("Then recording should not panic", func() {
				So(func() {
					nilManager.RecordDatasetReload("fixtures", time.Second, nil)
					nilManager.SetRenewalDigest(&domain.RenewalDigest{})
				}, ShouldNotPanic)
			})
		})
	})
}
