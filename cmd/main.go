package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookingCalendarHandler "github.com/boinvit/booking-service/internal/api/handlers/booking_calendar"
	cancelBookingHandler "github.com/boinvit/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/boinvit/booking-service/internal/api/handlers/create_booking"
	createInvoiceHandler "github.com/boinvit/booking-service/internal/api/handlers/create_invoice"
	createReviewHandler "github.com/boinvit/booking-service/internal/api/handlers/create_review"
	getAvailableSlotsHandler "github.com/boinvit/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/boinvit/booking-service/internal/api/handlers/get_booking"
	getBusinessHandler "github.com/boinvit/booking-service/internal/api/handlers/get_business"
	getBusinessBookingsHandler "github.com/boinvit/booking-service/internal/api/handlers/get_business_bookings"
	getBusinessStatsHandler "github.com/boinvit/booking-service/internal/api/handlers/get_business_stats"
	getInvoiceHandler "github.com/boinvit/booking-service/internal/api/handlers/get_invoice"
	initiatePaymentHandler "github.com/boinvit/booking-service/internal/api/handlers/initiate_payment"
	listBanksHandler "github.com/boinvit/booking-service/internal/api/handlers/list_banks"
	listInvoicesHandler "github.com/boinvit/booking-service/internal/api/handlers/list_invoices"
	listPayoutsHandler "github.com/boinvit/booking-service/internal/api/handlers/list_payouts"
	listReviewsHandler "github.com/boinvit/booking-service/internal/api/handlers/list_reviews"
	listServicesHandler "github.com/boinvit/booking-service/internal/api/handlers/list_services"
	listTransactionsHandler "github.com/boinvit/booking-service/internal/api/handlers/list_transactions"
	paymentWebhookHandler "github.com/boinvit/booking-service/internal/api/handlers/payment_webhook"
	rescheduleBookingHandler "github.com/boinvit/booking-service/internal/api/handlers/reschedule_booking"
	resolveLinkHandler "github.com/boinvit/booking-service/internal/api/handlers/resolve_link"
	searchBookingsHandler "github.com/boinvit/booking-service/internal/api/handlers/search_bookings"
	updateHoursHandler "github.com/boinvit/booking-service/internal/api/handlers/update_hours"
	updateInvoiceStatusHandler "github.com/boinvit/booking-service/internal/api/handlers/update_invoice_status"
	updatePaymentConfigHandler "github.com/boinvit/booking-service/internal/api/handlers/update_payment_config"
	"github.com/boinvit/booking-service/internal/api/middleware"
	"github.com/boinvit/booking-service/internal/config"
	"github.com/boinvit/booking-service/internal/infra/cache"
	bookingRepo "github.com/boinvit/booking-service/internal/infra/storage/booking"
	businessRepo "github.com/boinvit/booking-service/internal/infra/storage/business"
	clientRepo "github.com/boinvit/booking-service/internal/infra/storage/client"
	invoiceRepo "github.com/boinvit/booking-service/internal/infra/storage/invoice"
	paymentRepo "github.com/boinvit/booking-service/internal/infra/storage/payment"
	reviewRepo "github.com/boinvit/booking-service/internal/infra/storage/review"
	"github.com/boinvit/booking-service/internal/infra/stream"
	"github.com/boinvit/booking-service/internal/integrations/paystack"
	bookingsService "github.com/boinvit/booking-service/internal/service/bookings"
	businessesService "github.com/boinvit/booking-service/internal/service/businesses"
	invoicesService "github.com/boinvit/booking-service/internal/service/invoices"
	paymentsService "github.com/boinvit/booking-service/internal/service/payments"
	reviewsService "github.com/boinvit/booking-service/internal/service/reviews"
	cancelBookingUC "github.com/boinvit/booking-service/internal/usecase/cancel_booking"
	confirmPaymentUC "github.com/boinvit/booking-service/internal/usecase/confirm_payment"
	createBookingUC "github.com/boinvit/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/boinvit/booking-service/internal/usecase/get_available_slots"
	initiatePaymentUC "github.com/boinvit/booking-service/internal/usecase/initiate_payment"
	rescheduleBookingUC "github.com/boinvit/booking-service/internal/usecase/reschedule_booking"
	"github.com/boinvit/booking-service/pkg/dbmetrics"
	"github.com/boinvit/booking-service/pkg/logger"
	"github.com/boinvit/booking-service/pkg/metrics"
	"github.com/boinvit/booking-service/pkg/simpletxmanager"
	"github.com/boinvit/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Payment gateway client
	paystackClient := paystack.NewClient(
		cfg.Paystack.BaseURL,
		cfg.Paystack.SecretKey,
		cfg.Paystack.WebhookSecret,
		time.Duration(cfg.Paystack.Timeout)*time.Second,
		log,
	)
	log.Info("Paystack client initialized (base_url=%s, timeout=%ds)",
		cfg.Paystack.BaseURL, cfg.Paystack.Timeout)

	// Reference-data cache for public business lookups
	var businessCache businessesService.BusinessCache
	if cfg.Redis.Enabled {
		bc, err := cache.NewBusinessCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis: %v", err)
		}
		defer bc.Close()
		businessCache = bc
		log.Info("Business cache enabled (addr=%s)", cfg.Redis.Addr)
	}

	// Domain event stream for the notification pipeline
	var brokers string
	if cfg.Kafka.Enabled {
		brokers = strings.Join(cfg.Kafka.Brokers, ",")
	}
	producer := stream.NewProducer(brokers)
	defer producer.Close()
	if cfg.Kafka.Enabled {
		log.Info("Event producer initialized (brokers=%s)", brokers)
	} else {
		log.Info("Event producer disabled, domain events will be dropped")
	}

	// Repositories and transaction manager, with or without metrics
	var (
		bookingRepository  *bookingRepo.Repository
		businessRepository *businessRepo.Repository
		clientRepository   *clientRepo.Repository
		invoiceRepository  *invoiceRepo.Repository
		paymentRepository  *paymentRepo.Repository
		reviewRepository   *reviewRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		businessRepository = businessRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		invoiceRepository = invoiceRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		businessRepository = businessRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		invoiceRepository = invoiceRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	businessSvc := businessesService.NewService(businessRepository, businessCache, log)
	invoiceSvc := invoicesService.NewService(invoiceRepository, bookingRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, bookingRepository, log)
	paymentSvc := paymentsService.NewService(paymentRepository, paystackClient, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		businessRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		businessRepository,
		clientRepository,
		producer,
		txMgr,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		businessRepository,
		producer,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		producer,
		log,
	)
	initiatePaymentUseCase := initiatePaymentUC.NewUseCase(
		bookingRepository,
		businessRepository,
		paymentRepository,
		paystackClient,
		cfg.Paystack.CallbackURL,
		cfg.Payments.PlatformFeePercent,
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		paymentRepository,
		bookingRepository,
		invoiceRepository,
		paystackClient,
		producer,
		txMgr,
		log,
	)

	// Handlers
	getBusiness := getBusinessHandler.NewHandler(businessSvc, log)
	listServices := listServicesHandler.NewHandler(businessSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	searchBookings := searchBookingsHandler.NewHandler(bookingSvc, log)
	initiatePayment := initiatePaymentHandler.NewHandler(initiatePaymentUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(confirmPaymentUseCase, paystackClient, log)
	resolveLink := resolveLinkHandler.NewHandler(businessSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	bookingCalendar := bookingCalendarHandler.NewHandler(bookingSvc, log)
	getBusinessBookings := getBusinessBookingsHandler.NewHandler(bookingSvc, log)
	getBusinessStats := getBusinessStatsHandler.NewHandler(bookingSvc, log)
	updateHours := updateHoursHandler.NewHandler(businessSvc, log)
	updatePaymentConfig := updatePaymentConfigHandler.NewHandler(businessSvc, log)
	createInvoice := createInvoiceHandler.NewHandler(invoiceSvc, log)
	getInvoice := getInvoiceHandler.NewHandler(invoiceSvc, log)
	listInvoices := listInvoicesHandler.NewHandler(invoiceSvc, log)
	updateInvoiceStatus := updateInvoiceStatusHandler.NewHandler(invoiceSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	listTransactions := listTransactionsHandler.NewHandler(paymentSvc, log)
	listPayouts := listPayoutsHandler.NewHandler(paymentSvc, log)
	listBanks := listBanksHandler.NewHandler(paymentSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (rate-limited, no authentication)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		public.Use(limiter.Middleware())
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Public booking page
	public.HandleFunc("/businesses/{businessId}", getBusiness.Handle).Methods(http.MethodGet)
	public.HandleFunc("/businesses/{businessId}/services", listServices.Handle).Methods(http.MethodGet)
	public.HandleFunc("/businesses/{businessId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	public.HandleFunc("/businesses/{businessId}/reviews", listReviews.Handle).Methods(http.MethodGet)

	// Client booking flow
	public.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	public.HandleFunc("/bookings/search", searchBookings.Handle).Methods(http.MethodGet)

	// Payments
	public.HandleFunc("/payments/initiate", initiatePayment.Handle).Methods(http.MethodPost)
	public.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	// QR deep-link resolution
	public.HandleFunc("/resolve-link", resolveLink.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (JWT bearer)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// Booking management
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/calendar.ics", bookingCalendar.Handle).Methods(http.MethodGet)

	// Business dashboard
	protected.HandleFunc("/businesses/{businessId}/bookings", getBusinessBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/stats", getBusinessStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/hours", updateHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/businesses/{businessId}/payment-config", updatePaymentConfig.Handle).Methods(http.MethodPut)

	// Invoices
	protected.HandleFunc("/invoices", createInvoice.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/invoices/{invoiceId}", getInvoice.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/invoices/{invoiceId}/status", updateInvoiceStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/businesses/{businessId}/invoices", listInvoices.Handle).Methods(http.MethodGet)

	// Reviews
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)

	// Payment reporting
	protected.HandleFunc("/businesses/{businessId}/transactions", listTransactions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/payouts", listPayouts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/banks", listBanks.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
