package admin

import (
	"github.com/Alok-CS-2022/import-export-site/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

// AdminHandler carries every admin CRUD endpoint. One handler per
// resource, shared validation and rendering; the auth and role checks
// live in the middleware chain, not here.
type AdminHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	blogRepo     repositories.BlogRepository
	inquiryRepo  repositories.InquiryRepository
	contentRepo  repositories.SiteContentRepository
	validator    *validator.Validate
	render       *render.Render
}

func NewAdminHandler(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	blogRepo repositories.BlogRepository,
	inquiryRepo repositories.InquiryRepository,
	contentRepo repositories.SiteContentRepository,
	validate *validator.Validate,
	rnd *render.Render,
) *AdminHandler {
	return &AdminHandler{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		blogRepo:     blogRepo,
		inquiryRepo:  inquiryRepo,
		contentRepo:  contentRepo,
		validator:    validate,
		render:       rnd,
	}
}
