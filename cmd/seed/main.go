package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"hotelier/internal/database"
	"hotelier/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelier.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM booking_services")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM room_types")
	db.Exec("DELETE FROM revoked_tokens")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		Email:        "admin@hotelier.kz",
		PasswordHash: string(adminHash),
		FullName:     "Hotel Administrator",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@hotelier.kz / admin123")

	customers := []domain.User{}
	customerEmails := []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"}
	for i, email := range customerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
		customer := domain.User{
			Username:     fmt.Sprintf("guest%d", i+1),
			Email:        email,
			PasswordHash: string(hash),
			FullName:     fmt.Sprintf("Guest %d", i+1),
			Phone:        fmt.Sprintf("+7 777 123 45%02d", i+67),
			Role:         domain.RoleCustomer,
		}
		db.Create(&customer)
		customers = append(customers, customer)
	}

	// ================== ROOM TYPES ==================
	log.Println("Creating room types...")
	roomTypes := []domain.RoomType{
		{TypeName: "Standard", Description: "Cozy room with a queen bed", BasePrice: 15000, MaxOccupancy: 2, Amenities: "wifi,tv,minibar"},
		{TypeName: "Deluxe", Description: "Spacious room with a city view", BasePrice: 25000, MaxOccupancy: 3, Amenities: "wifi,tv,minibar,balcony"},
		{TypeName: "Suite", Description: "Two-room suite with a lounge area", BasePrice: 45000, MaxOccupancy: 4, Amenities: "wifi,tv,minibar,balcony,jacuzzi"},
	}
	for i := range roomTypes {
		db.Create(&roomTypes[i])
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	rooms := make([]domain.Room, 0, 12)
	for floor := 1; floor <= 4; floor++ {
		for j := 1; j <= 3; j++ {
			rt := roomTypes[(floor+j)%len(roomTypes)]
			room := domain.Room{
				RoomNumber: fmt.Sprintf("%d%02d", floor, j),
				RoomTypeID: rt.ID,
				Status:     domain.RoomAvailable,
				Floor:      floor,
			}
			db.Create(&room)
			rooms = append(rooms, room)
		}
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")
	services := []domain.Service{
		{ServiceName: "Breakfast", Description: "Buffet breakfast", Price: 3500, Category: domain.CategoryFood, IsActive: true},
		{ServiceName: "Laundry", Description: "Same-day laundry", Price: 2000, Category: domain.CategoryLaundry, IsActive: true},
		{ServiceName: "Spa Access", Description: "Full day spa pass", Price: 8000, Category: domain.CategorySpa, IsActive: true},
		{ServiceName: "Airport Transfer", Description: "Pickup or drop-off", Price: 6000, Category: domain.CategoryTransport, IsActive: true},
		{ServiceName: "Late Checkout", Description: "Checkout until 18:00", Price: 5000, Category: domain.CategoryOther, IsActive: false},
	}
	for i := range services {
		db.Create(&services[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	statuses := []domain.BookingStatus{
		domain.BookingPending, domain.BookingConfirmed,
		domain.BookingCheckedIn, domain.BookingCheckedOut,
	}
	now := time.Now().UTC()
	bookingDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		room := rooms[i%len(rooms)]
		customer := customers[rand.Intn(len(customers))]
		status := statuses[rand.Intn(len(statuses))]

		offset := rand.Intn(30) - 15
		nights := 1 + rand.Intn(5)
		checkIn := bookingDay.AddDate(0, 0, offset)
		checkOut := checkIn.AddDate(0, 0, nights)

		var rt domain.RoomType
		db.First(&rt, room.RoomTypeID)

		b := domain.Booking{
			CustomerID:   customer.ID,
			RoomID:       room.ID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			TotalNights:  nights,
			TotalAmount:  float64(nights) * rt.BasePrice,
			Status:       status,
			BookingDate:  checkIn.AddDate(0, 0, -rand.Intn(7)-1),
		}
		db.Create(&b)
		db.Model(&domain.Room{}).Where("id = ?", room.ID).
			Update("status", domain.RoomStatusFor(status))

		// attach a service to some bookings
		if i%2 == 0 {
			svc := services[rand.Intn(4)]
			db.Create(&domain.BookingService{
				BookingID:   b.ID,
				ServiceID:   svc.ID,
				Quantity:    1 + rand.Intn(3),
				UnitPrice:   svc.Price,
				TotalPrice:  svc.Price,
				ServiceDate: checkIn,
				Status:      domain.ServiceConfirmed,
			})
		}

		// reviews for completed stays
		if status == domain.BookingCheckedOut {
			db.Create(&domain.Review{
				CustomerID: customer.ID,
				BookingID:  b.ID,
				Rating:     3 + rand.Intn(3),
				Comment:    "Pleasant stay, would book again",
				ReviewDate: checkOut,
			})
		}
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@hotelier.kz / admin123")
	log.Println("Guests: asel@mail.kz, bekzat@gmail.com, dina@yandex.kz / guest123")
}
