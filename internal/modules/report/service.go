package report

import (
	"context"
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

// Service builds the admin reports. Aggregations that group over joins run
// in SQL; date-keyed series are bucketed here so the queries stay portable
// across dialects.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func dayKey(t time.Time) string {
	return t.Format(dateLayout)
}

// endOfDay pushes an inclusive day bound to the last instant queries should
// still match.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}

// Dashboard summarizes today's hotel state.
func (s *Service) Dashboard(ctx context.Context) (*DashboardReport, error) {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	rep := &DashboardReport{Date: dayKey(day)}

	var err error
	if rep.Rooms.Total, err = s.repo.CountRooms(ctx); err != nil {
		return nil, err
	}
	counts := []struct {
		status domain.RoomStatus
		dst    *int64
	}{
		{domain.RoomAvailable, &rep.Rooms.Available},
		{domain.RoomOccupied, &rep.Rooms.Occupied},
		{domain.RoomReserved, &rep.Rooms.Reserved},
		{domain.RoomMaintenance, &rep.Rooms.Maintenance},
	}
	for _, c := range counts {
		if *c.dst, err = s.repo.CountRoomsByStatus(ctx, c.status); err != nil {
			return nil, err
		}
	}

	if rep.TodayCheckIns, err = s.repo.CountBookingsByDateField(ctx, "check_in_date", day, nextDay); err != nil {
		return nil, err
	}
	if rep.TodayCheckOuts, err = s.repo.CountBookingsByDateField(ctx, "check_out_date", day, nextDay); err != nil {
		return nil, err
	}
	if rep.TodayNewBookings, err = s.repo.CountBookingsByDateField(ctx, "booking_date", day, nextDay); err != nil {
		return nil, err
	}

	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	if rep.MonthRevenue, err = s.repo.SumBookingAmount(ctx, monthStart, endOfDay(day)); err != nil {
		return nil, err
	}

	if rep.UpcomingBookings, err = s.repo.UpcomingConfirmed(ctx, day, 10); err != nil {
		return nil, err
	}
	return rep, nil
}

// BookingsSummary totals bookings over the range and breaks them down per
// booking day and per status.
func (s *Service) BookingsSummary(ctx context.Context, rng DateRange) (*BookingsSummary, error) {
	bookings, err := s.repo.BookingsBetween(ctx, rng.Start, endOfDay(rng.End))
	if err != nil {
		return nil, err
	}

	sum := &BookingsSummary{
		StartDate:    dayKey(rng.Start),
		EndDate:      dayKey(rng.End),
		StatusCounts: make(map[string]int64),
		Days:         []BookingsDay{},
	}
	byDay := make(map[string]*BookingsDay)
	for _, b := range bookings {
		sum.TotalBookings++
		sum.TotalRevenue += b.TotalAmount
		sum.StatusCounts[string(b.Status)]++

		key := dayKey(b.BookingDate)
		day, ok := byDay[key]
		if !ok {
			sum.Days = append(sum.Days, BookingsDay{Date: key})
			day = &sum.Days[len(sum.Days)-1]
			byDay[key] = day
		}
		day.Bookings++
		day.Revenue += b.TotalAmount
	}
	if sum.TotalBookings > 0 {
		sum.AverageBookingValue = sum.TotalRevenue / float64(sum.TotalBookings)
	}
	return sum, nil
}

// Occupancy computes the share of rooms occupied per night over the range.
// A booking occupies its room on every night of [check-in, check-out).
func (s *Service) Occupancy(ctx context.Context, rng DateRange) (*OccupancyReport, error) {
	totalRooms, err := s.repo.CountRooms(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.BookingsOverlapping(ctx, rng.Start, rng.End.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	rep := &OccupancyReport{
		StartDate:  dayKey(rng.Start),
		EndDate:    dayKey(rng.End),
		TotalRooms: totalRooms,
		Days:       []OccupancyDay{},
	}

	var rateSum float64
	for day := rng.Start; !day.After(rng.End); day = day.AddDate(0, 0, 1) {
		var occupied int64
		for _, b := range bookings {
			if !b.CheckInDate.After(day) && b.CheckOutDate.After(day) {
				occupied++
			}
		}
		var rate float64
		if totalRooms > 0 {
			rate = float64(occupied) / float64(totalRooms) * 100
		}
		rateSum += rate
		rep.Days = append(rep.Days, OccupancyDay{
			Date:          dayKey(day),
			OccupiedRooms: occupied,
			OccupancyRate: rate,
		})
	}
	if len(rep.Days) > 0 {
		rep.AverageOccupancyRate = rateSum / float64(len(rep.Days))
	}
	return rep, nil
}

func (s *Service) RevenueByRoomType(ctx context.Context, rng DateRange) (*RevenueReport, error) {
	rows, err := s.repo.RevenueByRoomType(ctx, rng.Start, endOfDay(rng.End))
	if err != nil {
		return nil, err
	}
	rep := &RevenueReport{
		StartDate: dayKey(rng.Start),
		EndDate:   dayKey(rng.End),
		RoomTypes: rows,
	}
	for _, row := range rows {
		rep.TotalRevenue += row.TotalRevenue
	}
	return rep, nil
}

func (s *Service) ServiceUsage(ctx context.Context, rng DateRange) (*ServiceUsageReport, error) {
	rows, err := s.repo.ServiceUsage(ctx, rng.Start, endOfDay(rng.End))
	if err != nil {
		return nil, err
	}
	rep := &ServiceUsageReport{
		StartDate: dayKey(rng.Start),
		EndDate:   dayKey(rng.End),
		Services:  rows,
	}
	for _, row := range rows {
		rep.TotalRevenue += row.TotalRevenue
	}
	return rep, nil
}

// CustomerStatistics lists every customer with their booking count and
// spend over the range. Customers with no bookings in the range appear
// with zeros.
func (s *Service) CustomerStatistics(ctx context.Context, rng DateRange) (*CustomerReport, error) {
	stats, err := s.repo.CustomerBookingStats(ctx, rng.Start, endOfDay(rng.End))
	if err != nil {
		return nil, err
	}
	customers, err := s.repo.AllCustomers(ctx)
	if err != nil {
		return nil, err
	}
	newCustomers, err := s.repo.CountNewCustomers(ctx, rng.Start, endOfDay(rng.End))
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]repository.CustomerStatsRow, len(stats))
	for _, row := range stats {
		byID[row.CustomerID] = row
	}

	rep := &CustomerReport{
		StartDate:    dayKey(rng.Start),
		EndDate:      dayKey(rng.End),
		NewCustomers: newCustomers,
		Customers:    make([]CustomerStat, 0, len(customers)),
	}
	for _, u := range customers {
		stat := CustomerStat{
			CustomerID: u.ID,
			FullName:   u.FullName,
			Email:      u.Email,
		}
		if row, ok := byID[u.ID]; ok {
			stat.BookingCount = row.BookingCount
			stat.TotalSpent = row.TotalSpent
			if row.BookingCount > 0 {
				stat.AverageSpent = row.TotalSpent / float64(row.BookingCount)
			}
		}
		rep.Customers = append(rep.Customers, stat)
	}
	return rep, nil
}

// YearlyFinancial breaks room and service revenue down per calendar month.
func (s *Service) YearlyFinancial(ctx context.Context, year int) (*FinancialReport, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	bookings, err := s.repo.BookingsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ServiceLineItemsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	rep := &FinancialReport{Year: year, Months: make([]MonthFinancial, 12)}
	for m := 0; m < 12; m++ {
		rep.Months[m].Month = time.Month(m + 1).String()
	}
	for _, b := range bookings {
		m := &rep.Months[int(b.BookingDate.Month())-1]
		m.Bookings++
		m.RoomRevenue += b.TotalAmount
		rep.TotalRoomRevenue += b.TotalAmount
	}
	for _, item := range items {
		m := &rep.Months[int(item.ServiceDate.Month())-1]
		m.ServiceRevenue += item.TotalPrice
		rep.TotalServiceRevenue += item.TotalPrice
	}
	for m := range rep.Months {
		rep.Months[m].TotalRevenue = rep.Months[m].RoomRevenue + rep.Months[m].ServiceRevenue
	}
	rep.TotalRevenue = rep.TotalRoomRevenue + rep.TotalServiceRevenue
	return rep, nil
}

// ExportBookings returns the flat booking rows for the export endpoint.
func (s *Service) ExportBookings(ctx context.Context, rng DateRange) ([]repository.BookingExportRow, error) {
	return s.repo.BookingsExport(ctx, rng.Start, endOfDay(rng.End))
}

// ExportServices returns the flat service line items for the export
// endpoint.
func (s *Service) ExportServices(ctx context.Context, rng DateRange) ([]ServiceExportRow, error) {
	items, err := s.repo.ServiceLineItemsBetween(ctx, rng.Start, endOfDay(rng.End))
	if err != nil {
		return nil, err
	}
	rows := make([]ServiceExportRow, 0, len(items))
	for _, item := range items {
		row := ServiceExportRow{
			ItemID:      item.ID,
			BookingID:   item.BookingID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
			ServiceDate: item.ServiceDate,
			Status:      string(item.Status),
		}
		if item.Service != nil {
			row.ServiceName = item.Service.ServiceName
			row.Category = string(item.Service.Category)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
