package headcount

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// #region errors
var (
	ErrEmptyScan        = errors.New("empty scan")
	ErrUnknownEmployee  = errors.New("employee not in roster")
	ErrDuplicateScan    = errors.New("employee already registered")
	ErrNegativeStaffing = errors.New("programmed staffing must not be negative")
)

// #endregion errors

// #region seniority

// experienceDays is the service time after which an employee counts as
// experienced.
const experienceDays = 90

// Seniority returns whole days of service and years rounded to one decimal.
// A zero service date yields zero seniority.
func Seniority(serviceDate, now time.Time) (days int, years float64) {
	if serviceDate.IsZero() || serviceDate.After(now) {
		return 0, 0
	}
	days = int(now.Sub(serviceDate).Hours() / 24)
	years = math.Round(float64(days)/365.25*10) / 10
	return days, years
}

// Experienced reports whether the service date lies more than 90 days back.
// Unknown service dates count as inexperienced.
func Experienced(serviceDate, now time.Time) bool {
	if serviceDate.IsZero() {
		return false
	}
	days, _ := Seniority(serviceDate, now)
	return days > experienceDays
}

// #endregion seniority

// #region scan-record
// ScanRecord is one registered employee scan.
type ScanRecord struct {
	Employee       Employee
	ScannedAt      time.Time
	SeniorityDays  int
	SeniorityYears float64
}

// #endregion scan-record

// #region tracker
// Tracker counts unique employee scans for one shift against the roster and
// the programmed staffing totals. Duplicate scans keep the first
// registration.
type Tracker struct {
	byID  map[string]Employee
	scans map[string]ScanRecord
	order []string

	progOperators int
	progSupports  int
	progQuality   int
}

// NewTracker indexes the roster by employee id.
func NewTracker(roster []Employee) *Tracker {
	t := &Tracker{
		byID:  make(map[string]Employee, len(roster)),
		scans: make(map[string]ScanRecord),
	}
	for _, e := range roster {
		t.byID[e.ID] = e
	}
	return t
}

// Scan registers one scanned employee id.
func (t *Tracker) Scan(id string, now time.Time) (ScanRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ScanRecord{}, ErrEmptyScan
	}
	emp, ok := t.byID[id]
	if !ok {
		return ScanRecord{}, fmt.Errorf("scan %s: %w", id, ErrUnknownEmployee)
	}
	if prev, dup := t.scans[id]; dup {
		return prev, fmt.Errorf("scan %s: %w", id, ErrDuplicateScan)
	}

	days, years := Seniority(emp.ServiceDate, now)
	rec := ScanRecord{Employee: emp, ScannedAt: now, SeniorityDays: days, SeniorityYears: years}
	t.scans[id] = rec
	t.order = append(t.order, id)
	return rec, nil
}

// Scanned returns the registered scans in scan order.
func (t *Tracker) Scanned() []ScanRecord {
	out := make([]ScanRecord, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.scans[id])
	}
	return out
}

// SetProgrammed stores the expected staffing for the shift.
func (t *Tracker) SetProgrammed(operators, supports, quality int) error {
	if operators < 0 || supports < 0 || quality < 0 {
		return ErrNegativeStaffing
	}
	t.progOperators = operators
	t.progSupports = supports
	t.progQuality = quality
	return nil
}

// #endregion tracker

// #region stats
// Stats is the headcount summary at a point in time.
type Stats struct {
	TotalScanned  int
	Operators     int // POSITION == mfgupo
	Quality       int // POSITION == qainsp
	Experienced   int
	Inexperienced int
	OutsideLine   int // scanned but assigned to a different line

	ProgrammedOperators int
	ProgrammedSupports  int
	ProgrammedQuality   int
	ProgrammedTotal     int
	Difference          int // scanned - programmed
}

// Stats computes the summary. selectedLine may be empty, in which case the
// outside-line count stays zero.
func (t *Tracker) Stats(selectedLine string, now time.Time) Stats {
	s := Stats{
		TotalScanned:        len(t.scans),
		ProgrammedOperators: t.progOperators,
		ProgrammedSupports:  t.progSupports,
		ProgrammedQuality:   t.progQuality,
	}
	s.ProgrammedTotal = t.progOperators + t.progSupports + t.progQuality
	s.Difference = s.TotalScanned - s.ProgrammedTotal

	line := strings.ToLower(strings.TrimSpace(selectedLine))
	for _, rec := range t.scans {
		switch strings.ToLower(rec.Employee.Position) {
		case "mfgupo":
			s.Operators++
		case "qainsp":
			s.Quality++
		}
		if Experienced(rec.Employee.ServiceDate, now) {
			s.Experienced++
		} else {
			s.Inexperienced++
		}
		if line != "" && strings.ToLower(rec.Employee.Line) != line {
			s.OutsideLine++
		}
	}
	return s
}

// #endregion stats
