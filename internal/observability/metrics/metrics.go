package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the reservation flow.
type BookingMetrics struct {
	createdTotal      *prometheus.CounterVec
	conflictsTotal    *prometheus.CounterVec
	availabilityTotal prometheus.Counter
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		createdTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neillbeauty",
			Subsystem: "bookings",
			Name:      "reservations_created_total",
			Help:      "Total reservations created",
		}, []string{"scheduled"}),
		conflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neillbeauty",
			Subsystem: "bookings",
			Name:      "slot_conflicts_total",
			Help:      "Booking attempts rejected because the slot was taken",
		}, []string{"reason"}),
		availabilityTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neillbeauty",
			Subsystem: "bookings",
			Name:      "availability_queries_total",
			Help:      "Total availability lookups",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.createdTotal, m.conflictsTotal, m.availabilityTotal)
	return m
}

func (m *BookingMetrics) ObserveCreated(scheduled bool) {
	if m == nil {
		return
	}
	label := "false"
	if scheduled {
		label = "true"
	}
	m.createdTotal.WithLabelValues(label).Inc()
}

// ObserveConflict records a rejected booking; reason is "unavailable" or
// "conflict".
func (m *BookingMetrics) ObserveConflict(reason string) {
	if m == nil {
		return
	}
	m.conflictsTotal.WithLabelValues(reason).Inc()
}

func (m *BookingMetrics) ObserveAvailabilityQuery() {
	if m == nil {
		return
	}
	m.availabilityTotal.Inc()
}
