// File: pawbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawbook/config"
	"pawbook/cron"
	"pawbook/database"
	appointmentRepo "pawbook/database/repository/appointment"
	petRepo "pawbook/database/repository/pet"
	"pawbook/handlers"
	"pawbook/middleware"
	"pawbook/routes"
	"pawbook/services/booking"
	"pawbook/services/calendar"
	"pawbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.New(routes.CORSConfig()))
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	pets := petRepo.NewMongoPetRepo()

	// services.
	availability := &booking.WorkingHoursAvailability{
		Appointments: appointments,
		OpenHour:     config.AppConfig.BusinessOpenHour,
		CloseHour:    config.AppConfig.BusinessCloseHour,
		SlotMinutes:  config.AppConfig.AtomicSlotMinutes,
	}

	paymentProcessor := booking.NewStripePaymentProcessor(
		logger,
		config.AppConfig.CheckoutSuccessURL,
		config.AppConfig.CheckoutCancelURL,
	)

	reminderScheduler := cron.NewAsynqReminderScheduler()
	cron.InitReminderWorker()

	wizardService := &booking.DefaultWizardService{
		Store:        booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Pets:         pets,
		Appointments: appointments,
		Availability: availability,
		Payments:     paymentProcessor,
		Reminders:    reminderScheduler,
		Logger:       logger,
	}

	gridConfig := calendar.GridConfig{
		DayStartHour:    config.AppConfig.CalendarDayStartHour,
		DayEndHour:      config.AppConfig.CalendarDayEndHour,
		IntervalMinutes: config.AppConfig.CalendarIntervalMinutes,
		CellHeight:      config.AppConfig.CalendarCellHeight,
	}
	workingHours := calendar.WorkingHours{
		Start: config.AppConfig.WorkStartHour * 60,
		End:   config.AppConfig.WorkEndHour * 60,
	}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(wizardService, logger)
	catalogHandler := handlers.NewCatalogHandler(pets)
	calendarHandler := handlers.NewCalendarHandler(appointments, gridConfig, parseWorkDays(config.AppConfig.WorkDays), workingHours, logger)

	routes.RegisterHealthRoute(router)
	routes.RegisterCatalogRoutes(router, catalogHandler)
	routes.RegisterBookingRoutes(router, bookingHandler)
	routes.RegisterCalendarRoutes(router, calendarHandler)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Pawbook listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
}

func parseWorkDays(names []string) map[time.Weekday]bool {
	byName := map[string]time.Weekday{
		"Sunday":    time.Sunday,
		"Monday":    time.Monday,
		"Tuesday":   time.Tuesday,
		"Wednesday": time.Wednesday,
		"Thursday":  time.Thursday,
		"Friday":    time.Friday,
		"Saturday":  time.Saturday,
	}
	workDays := make(map[time.Weekday]bool, len(names))
	for _, name := range names {
		if day, ok := byName[name]; ok {
			workDays[day] = true
		}
	}
	return workDays
}
