package routes

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/Alok-CS-2022/import-export-site/app/cart"
	"github.com/Alok-CS-2022/import-export-site/app/configs"
	"github.com/Alok-CS-2022/import-export-site/app/handlers"
	"github.com/Alok-CS-2022/import-export-site/app/handlers/admin"
	"github.com/Alok-CS-2022/import-export-site/app/middlewares"
	"github.com/Alok-CS-2022/import-export-site/app/repositories"
	"github.com/Alok-CS-2022/import-export-site/app/services"
	"github.com/Alok-CS-2022/import-export-site/app/utils/renderer"
)

func NewRouter(db *gorm.DB) *mux.Router {
	router := mux.NewRouter()

	rnd := renderer.New()
	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	contentRepo := repositories.NewSiteContentRepository(db)
	userRepo := repositories.NewUserRepository(db)

	tokens := services.NewTokenService(configs.LoadENV.JWTSecret)
	mailer := services.NewMailer(services.MailerConfig{
		Host:     configs.LoadENV.EmailHost,
		Port:     configs.LoadENV.EmailPort,
		Username: configs.LoadENV.EmailUsername,
		Password: configs.LoadENV.EmailPassword,
		From:     configs.LoadENV.EmailFrom,
		NotifyTo: configs.LoadENV.AdminNotifyEmail,
	})
	inquirySvc := services.NewInquiryService(inquiryRepo, mailer)
	contentResolver := services.NewContentResolver(contentRepo, configs.LoadENV.ContentCacheDir)

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("NewRouter: session keys: %v", err)
	}
	cartSessions := cart.NewSessionStore(keys.AuthKey, keys.EncKey)

	catalogHandler := handlers.NewCatalogHandler(productRepo, categoryRepo, rnd)
	blogHandler := handlers.NewBlogHandler(blogRepo, rnd)
	contentHandler := handlers.NewContentHandler(contentResolver, rnd)
	cartHandler := handlers.NewCartHandler(cartSessions, inquirySvc, validate, rnd)
	inquiryHandler := handlers.NewInquiryHandler(inquirySvc, validate, rnd, configs.LoadENV.InquiryRequireAuth)
	orderHandler := handlers.NewOrderHandler(inquiryRepo, rnd)
	authHandler := handlers.NewAuthHandler(userRepo, tokens, validate, rnd)
	adminHandler := admin.NewAdminHandler(productRepo, categoryRepo, blogRepo, inquiryRepo, contentRepo, validate, rnd)

	optionalAuth := middlewares.AuthMiddleware(tokens, userRepo, rnd, false)
	requiredAuth := middlewares.AuthMiddleware(tokens, userRepo, rnd, true)
	adminOnly := middlewares.AdminMiddleware(rnd)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/products", catalogHandler.ListProducts).Methods("GET")
	api.HandleFunc("/featured-products", catalogHandler.FeaturedProducts).Methods("GET")
	api.HandleFunc("/products/{id}", catalogHandler.GetProduct).Methods("GET")
	api.HandleFunc("/categories", catalogHandler.ListCategories).Methods("GET")
	api.HandleFunc("/blog", blogHandler.ListStories).Methods("GET")
	api.HandleFunc("/content", contentHandler.GetContent).Methods("GET")

	api.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	api.HandleFunc("/cart/items", cartHandler.AddItem).Methods("POST")
	api.HandleFunc("/cart/items/{productId}", cartHandler.UpdateItem).Methods("PUT")
	api.HandleFunc("/cart/items/{productId}", cartHandler.RemoveItem).Methods("DELETE")

	// Checkout and inquiry accept anonymous visitors unless the auth
	// policy says otherwise, but a bearer token sent along is always
	// resolved so the inquiry can be attached to the account.
	api.Handle("/cart/checkout", optionalAuth(http.HandlerFunc(cartHandler.Checkout))).Methods("POST")
	inquiryChain := optionalAuth
	if configs.LoadENV.InquiryRequireAuth {
		inquiryChain = requiredAuth
	}
	api.Handle("/inquiry", inquiryChain(http.HandlerFunc(inquiryHandler.SubmitInquiry))).Methods("POST")

	api.Handle("/my-orders", requiredAuth(http.HandlerFunc(orderHandler.MyOrders))).Methods("GET")

	api.HandleFunc("/admin/auth/login", authHandler.Login).Methods("POST")

	adminAPI := api.PathPrefix("/admin").Subrouter()
	adminAPI.Use(requiredAuth, adminOnly)

	adminAPI.HandleFunc("/products", adminHandler.ListProducts).Methods("GET")
	adminAPI.HandleFunc("/products", adminHandler.CreateProduct).Methods("POST")
	adminAPI.HandleFunc("/products", adminHandler.UpdateProduct).Methods("PUT")
	adminAPI.HandleFunc("/products", adminHandler.DeleteProduct).Methods("DELETE")

	adminAPI.HandleFunc("/categories", adminHandler.ListCategories).Methods("GET")
	adminAPI.HandleFunc("/categories", adminHandler.CreateCategory).Methods("POST")
	adminAPI.HandleFunc("/categories", adminHandler.UpdateCategory).Methods("PUT")
	adminAPI.HandleFunc("/categories", adminHandler.DeleteCategory).Methods("DELETE")

	adminAPI.HandleFunc("/blog", adminHandler.ListBlogStories).Methods("GET")
	adminAPI.HandleFunc("/blog", adminHandler.CreateBlogStory).Methods("POST")
	adminAPI.HandleFunc("/blog", adminHandler.UpdateBlogStory).Methods("PUT")
	adminAPI.HandleFunc("/blog", adminHandler.DeleteBlogStory).Methods("DELETE")

	adminAPI.HandleFunc("/orders", adminHandler.ListOrders).Methods("GET")
	adminAPI.HandleFunc("/orders", adminHandler.UpdateOrderStatus).Methods("PUT")

	adminAPI.HandleFunc("/content", adminHandler.GetContent).Methods("GET")
	adminAPI.HandleFunc("/content", adminHandler.UpdateContent).Methods("PUT")

	// Read-only admin listings can be opened up for staging setups.
	if configs.LoadENV.AdminPublicRead {
		api.HandleFunc("/admin-public/products", adminHandler.ListProducts).Methods("GET")
		api.HandleFunc("/admin-public/categories", adminHandler.ListCategories).Methods("GET")
		api.HandleFunc("/admin-public/blog", adminHandler.ListBlogStories).Methods("GET")
	}

	router.PathPrefix("/").Handler(http.FileServer(http.Dir("public")))

	return router
}
