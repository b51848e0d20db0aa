package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"globalmart/libs"
	"globalmart/middleware"
	"globalmart/models"
	"globalmart/repositories"
	"globalmart/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeProductStore is an in-memory ProductStore.
type fakeProductStore struct {
	products map[int]*models.Product
	nextID   int
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[int]*models.Product{}, nextID: 1}
}

func (s *fakeProductStore) add(p models.Product) *models.Product {
	p.ID = s.nextID
	p.CreatedAt = time.Now().Add(time.Duration(s.nextID) * time.Second)
	p.UpdatedAt = p.CreatedAt
	s.nextID++
	s.products[p.ID] = &p
	return &p
}

func (s *fakeProductStore) List(_ context.Context, filter models.ProductFilter) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range s.products {
		if filter.ActiveOnly && !p.IsActive {
			continue
		}
		if filter.FeaturedOnly && !p.IsFeatured {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *fakeProductStore) GetByID(_ context.Context, id int) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *fakeProductStore) Create(_ context.Context, req models.CreateProductRequest) (*models.Product, error) {
	p := models.Product{
		Name:                req.Name,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Specifications:      req.Specifications,
		ImageURL:            req.ImageURL,
		GalleryImages:       req.GalleryImages,
		Category:            req.Category,
		Subcategory:         req.Subcategory,
		Price:               req.Price,
		IsActive:            true,
		Slug:                req.Slug,
	}
	if req.StockQuantity != nil {
		p.StockQuantity = *req.StockQuantity
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	return s.add(p), nil
}

func (s *fakeProductStore) Update(_ context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	empty := models.UpdateProductRequest{}
	if req == empty {
		return nil, repositories.ErrNoFields
	}

	p, ok := s.products[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Category != nil {
		p.Category = req.Category
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.UpdatedAt = time.Now()
	copied := *p
	return &copied, nil
}

func (s *fakeProductStore) SoftDelete(_ context.Context, id int) error {
	if p, ok := s.products[id]; ok {
		p.IsActive = false
	}
	return nil
}

func (s *fakeProductStore) ListCategories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	for _, p := range s.products {
		if !p.IsActive || p.Category == nil || *p.Category == "" {
			continue
		}
		seen[*p.Category] = true
	}
	out := []string{}
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

// fakeInquiryStore is an in-memory InquiryStore.
type fakeInquiryStore struct {
	inquiries map[int]*models.Inquiry
	nextID    int
}

func newFakeInquiryStore() *fakeInquiryStore {
	return &fakeInquiryStore{inquiries: map[int]*models.Inquiry{}, nextID: 1}
}

func (s *fakeInquiryStore) List(_ context.Context, filter models.InquiryFilter) ([]models.Inquiry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	out := []models.Inquiry{}
	for _, i := range s.inquiries {
		if filter.Status != "" && i.Status != filter.Status {
			continue
		}
		out = append(out, *i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeInquiryStore) GetByID(_ context.Context, id int) (*models.Inquiry, error) {
	i, ok := s.inquiries[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *i
	return &copied, nil
}

func (s *fakeInquiryStore) Create(_ context.Context, req models.CreateInquiryRequest) (*models.Inquiry, error) {
	i := models.Inquiry{
		ID:        s.nextID,
		ProductID: req.ProductID,
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Phone:     req.Phone,
		Country:   req.Country,
		Message:   req.Message,
		Status:    models.InquiryStatusPending,
		CreatedAt: time.Now().Add(time.Duration(s.nextID) * time.Second),
	}
	i.UpdatedAt = i.CreatedAt
	s.nextID++
	s.inquiries[i.ID] = &i
	copied := i
	return &copied, nil
}

func (s *fakeInquiryStore) SetStatus(_ context.Context, id int, status string) (*models.Inquiry, error) {
	i, ok := s.inquiries[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	i.Status = status
	i.UpdatedAt = time.Now()
	copied := *i
	return &copied, nil
}

// fakeAdminStore authenticates against seeded digests like the real
// repository does.
type fakeAdminStore struct {
	admins map[string]models.Admin
	hashes map[string]string
	stats  models.DashboardStats
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{
		admins: map[string]models.Admin{
			"admin123": {ID: 1, Username: "admin123", Role: models.RoleSuperAdmin},
			"admin":    {ID: 2, Username: "admin", Role: models.RoleAdmin},
		},
		hashes: map[string]string{
			"admin123": utils.HashPassword("admin123"),
			"admin":    utils.HashPassword("admin123"),
		},
	}
}

func (s *fakeAdminStore) Authenticate(_ context.Context, username, password string) (*models.Admin, error) {
	digest, ok := s.hashes[username]
	if !ok || digest != utils.HashPassword(password) {
		return nil, nil
	}
	admin := s.admins[username]
	return &admin, nil
}

func (s *fakeAdminStore) DashboardStats(_ context.Context) (*models.DashboardStats, error) {
	stats := s.stats
	return &stats, nil
}

// fakeSettingsStore is an in-memory SettingsStore.
type fakeSettingsStore struct {
	values map[string]string
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{values: map[string]string{}}
}

func (s *fakeSettingsStore) GetString(_ context.Context, key, fallback string) (string, error) {
	if v, ok := s.values[key]; ok && v != "" {
		return v, nil
	}
	return fallback, nil
}

func (s *fakeSettingsStore) SetString(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

// fakeStorage is an in-memory object store.
type fakeStorage struct {
	objects map[string]libs.Object
	uploads int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string]libs.Object{}}
}

func (s *fakeStorage) Upload(_ context.Context, data []byte, filename, contentType, folder string) (*libs.UploadResult, error) {
	s.uploads++
	key := libs.ObjectKey(folder, filename)
	s.objects[key] = libs.Object{Data: data, ContentType: contentType, Size: int64(len(data))}
	return &libs.UploadResult{
		URL:         libs.PublicURL(key),
		Key:         key,
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}

func (s *fakeStorage) Fetch(_ context.Context, key string) (*libs.Object, error) {
	obj, ok := s.objects[key]
	if !ok {
		return nil, nil
	}
	return &obj, nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

// testEnv bundles the fakes and a router wired like routes.SetupRoutes.
type testEnv struct {
	router    *gin.Engine
	products  *fakeProductStore
	inquiries *fakeInquiryStore
	admins    *fakeAdminStore
	settings  *fakeSettingsStore
	storage   *fakeStorage
}

func newTestEnv() *testEnv {
	env := &testEnv{
		products:  newFakeProductStore(),
		inquiries: newFakeInquiryStore(),
		admins:    newFakeAdminStore(),
		settings:  newFakeSettingsStore(),
		storage:   newFakeStorage(),
	}

	productCtrl := NewProductController(env.products)
	inquiryCtrl := NewInquiryController(env.inquiries, env.settings, nil)
	adminCtrl := NewAdminController(env.admins, env.inquiries)
	settingsCtrl := NewSettingsController(env.settings)
	uploadCtrl := NewUploadController(env.storage, 5*1024*1024)
	imageCtrl := NewImageController(env.storage)

	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/products", middleware.OptionalAuth(), productCtrl.GetAllProducts)
		api.GET("/products/categories", productCtrl.GetCategories)
		api.GET("/products/featured", productCtrl.GetFeaturedProducts)
		api.GET("/products/:id", middleware.OptionalAuth(), productCtrl.GetProductByID)
		api.POST("/products", middleware.RequireSuperAdmin(), productCtrl.CreateProduct)
		api.PUT("/products/:id", middleware.RequireSuperAdmin(), productCtrl.UpdateProduct)
		api.DELETE("/products/:id", middleware.RequireSuperAdmin(), productCtrl.DeleteProduct)

		api.POST("/inquiries", inquiryCtrl.CreateInquiry)
		api.GET("/inquiries", middleware.RequireAuth(), inquiryCtrl.GetAllInquiries)
		api.GET("/inquiries/:id", middleware.RequireAuth(), inquiryCtrl.GetInquiryByID)
		api.PUT("/inquiries/:id/status", middleware.RequireAuth(), inquiryCtrl.UpdateInquiryStatus)
		api.DELETE("/inquiries/:id", middleware.RequireSuperAdmin(), inquiryCtrl.DeleteInquiry)

		api.GET("/settings", settingsCtrl.GetSettings)
		api.POST("/settings", middleware.RequireSuperAdmin(), settingsCtrl.UpdateSettings)

		api.POST("/upload/image", middleware.RequireSuperAdmin(), uploadCtrl.UploadImage)
		api.GET("/images/:filename", imageCtrl.GetImage)

		api.POST("/admin/login", adminCtrl.Login)
		api.POST("/admin/verify", adminCtrl.VerifyToken)
		api.POST("/admin/logout", adminCtrl.Logout)
		api.GET("/admin/stats", middleware.RequireAuth(), adminCtrl.GetDashboardStats)
	}

	env.router = router
	return env
}

func (env *testEnv) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func superAdminToken() string {
	token, _ := utils.GenerateToken(1, "admin123", models.RoleSuperAdmin, "dev-secret-key-change-in-production", time.Hour)
	return token
}

func adminToken() string {
	token, _ := utils.GenerateToken(2, "admin", models.RoleAdmin, "dev-secret-key-change-in-production", time.Hour)
	return token
}

func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	out := map[string]interface{}{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return out
}

func strPtr(s string) *string { return &s }
