package usecase

import (
	"context"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"

	"github.com/google/uuid"
)

// Function-field fakes for the repository interfaces. Unset fields
// return zero values, so each test wires only what it exercises.

type fakeUserRepo struct {
	createFn           func(ctx context.Context, user *entity.User) error
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn      func(ctx context.Context, email string) (*entity.User, error)
	updateFn           func(ctx context.Context, user *entity.User) error
	updateLastActiveFn func(ctx context.Context, id uuid.UUID) error
	updateStatusFn     func(ctx context.Context, id uuid.UUID, status entity.UserStatus) error
	listCustomersFn    func(ctx context.Context) ([]*repository.CustomerSummary, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) UpdateLastActive(ctx context.Context, id uuid.UUID) error {
	if f.updateLastActiveFn != nil {
		return f.updateLastActiveFn(ctx, id)
	}
	return nil
}

func (f *fakeUserRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (f *fakeUserRepo) ListCustomers(ctx context.Context) ([]*repository.CustomerSummary, error) {
	if f.listCustomersFn != nil {
		return f.listCustomersFn(ctx)
	}
	return nil, nil
}

type fakeAddressRepo struct {
	findByIDFn            func(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	findDefaultByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.Address, error)
	replaceDefaultFn      func(ctx context.Context, address *entity.Address) error
}

func (f *fakeAddressRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeAddressRepo) FindDefaultByUserID(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	if f.findDefaultByUserIDFn != nil {
		return f.findDefaultByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeAddressRepo) ReplaceDefault(ctx context.Context, address *entity.Address) error {
	if f.replaceDefaultFn != nil {
		return f.replaceDefaultFn(ctx, address)
	}
	return nil
}

type fakeCategoryRepo struct {
	findAllFn    func(ctx context.Context) ([]*entity.Category, error)
	findByIDFn   func(ctx context.Context, id int) (*entity.Category, error)
	findByNameFn func(ctx context.Context, name string) (*entity.Category, error)
	createFn     func(ctx context.Context, category *entity.Category) error
	updateFn     func(ctx context.Context, category *entity.Category) error
	deleteFn     func(ctx context.Context, id int) error
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id int) (*entity.Category, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	if f.findByNameFn != nil {
		return f.findByNameFn(ctx, name)
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if f.createFn != nil {
		return f.createFn(ctx, category)
	}
	return nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, category)
	}
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id int) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeProductRepo struct {
	findActiveFn          func(ctx context.Context, filter repository.ProductFilter) ([]*repository.ProductWithCategory, error)
	findAllWithCategoryFn func(ctx context.Context) ([]*repository.ProductWithCategory, error)
	findByIDFn            func(ctx context.Context, id uuid.UUID) (*repository.ProductWithCategory, error)
	createFn              func(ctx context.Context, product *entity.Product) error
	updateFn              func(ctx context.Context, product *entity.Product) error
	deleteFn              func(ctx context.Context, id uuid.UUID) error
	countByCategoryIDFn   func(ctx context.Context, categoryID int) (int64, error)
}

func (f *fakeProductRepo) FindActive(ctx context.Context, filter repository.ProductFilter) ([]*repository.ProductWithCategory, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAllWithCategory(ctx context.Context) ([]*repository.ProductWithCategory, error) {
	if f.findAllWithCategoryFn != nil {
		return f.findAllWithCategoryFn(ctx)
	}
	return nil, nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*repository.ProductWithCategory, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if f.createFn != nil {
		return f.createFn(ctx, product)
	}
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, product)
	}
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeProductRepo) CountByCategoryID(ctx context.Context, categoryID int) (int64, error) {
	if f.countByCategoryIDFn != nil {
		return f.countByCategoryIDFn(ctx, categoryID)
	}
	return 0, nil
}

type fakeOrderRepo struct {
	existsByIDFn        func(ctx context.Context, id string) (bool, error)
	createWithDetailsFn func(ctx context.Context, creation *repository.OrderCreation) error
	findByIDFn          func(ctx context.Context, id string) (*entity.Order, error)
	findByCustomerIDFn  func(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
	findAllFn           func(ctx context.Context) ([]*entity.Order, error)
	updateStatusFn      func(ctx context.Context, id string, status entity.OrderStatus) error
}

func (f *fakeOrderRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	if f.existsByIDFn != nil {
		return f.existsByIDFn(ctx, id)
	}
	return false, nil
}

func (f *fakeOrderRepo) CreateWithDetails(ctx context.Context, creation *repository.OrderCreation) error {
	if f.createWithDetailsFn != nil {
		return f.createWithDetailsFn(ctx, creation)
	}
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	if f.findByCustomerIDFn != nil {
		return f.findByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]*entity.Order, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status)
	}
	return nil
}

type fakeOrderItemRepo struct {
	findByOrderIDFn  func(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
	findByOrderIDsFn func(ctx context.Context, orderIDs []string) (map[string][]*entity.OrderItem, error)
}

func (f *fakeOrderItemRepo) FindByOrderID(ctx context.Context, orderID string) ([]*entity.OrderItem, error) {
	if f.findByOrderIDFn != nil {
		return f.findByOrderIDFn(ctx, orderID)
	}
	return nil, nil
}

func (f *fakeOrderItemRepo) FindByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]*entity.OrderItem, error) {
	if f.findByOrderIDsFn != nil {
		return f.findByOrderIDsFn(ctx, orderIDs)
	}
	return map[string][]*entity.OrderItem{}, nil
}

type fakeHeroSlideRepo struct {
	findAllFn  func(ctx context.Context, activeOnly bool) ([]*entity.HeroSlide, error)
	findByIDFn func(ctx context.Context, id int) (*entity.HeroSlide, error)
	createFn   func(ctx context.Context, slide *entity.HeroSlide) error
	updateFn   func(ctx context.Context, slide *entity.HeroSlide) error
	deleteFn   func(ctx context.Context, id int) error
}

func (f *fakeHeroSlideRepo) FindAll(ctx context.Context, activeOnly bool) ([]*entity.HeroSlide, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, activeOnly)
	}
	return nil, nil
}

func (f *fakeHeroSlideRepo) FindByID(ctx context.Context, id int) (*entity.HeroSlide, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeHeroSlideRepo) Create(ctx context.Context, slide *entity.HeroSlide) error {
	if f.createFn != nil {
		return f.createFn(ctx, slide)
	}
	return nil
}

func (f *fakeHeroSlideRepo) Update(ctx context.Context, slide *entity.HeroSlide) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, slide)
	}
	return nil
}

func (f *fakeHeroSlideRepo) Delete(ctx context.Context, id int) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakePromoBannerRepo struct {
	findAllFn  func(ctx context.Context, activeOnly bool) ([]*entity.PromoBanner, error)
	findByIDFn func(ctx context.Context, id int) (*entity.PromoBanner, error)
	createFn   func(ctx context.Context, banner *entity.PromoBanner) error
	updateFn   func(ctx context.Context, banner *entity.PromoBanner) error
	deleteFn   func(ctx context.Context, id int) error
}

func (f *fakePromoBannerRepo) FindAll(ctx context.Context, activeOnly bool) ([]*entity.PromoBanner, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, activeOnly)
	}
	return nil, nil
}

func (f *fakePromoBannerRepo) FindByID(ctx context.Context, id int) (*entity.PromoBanner, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakePromoBannerRepo) Create(ctx context.Context, banner *entity.PromoBanner) error {
	if f.createFn != nil {
		return f.createFn(ctx, banner)
	}
	return nil
}

func (f *fakePromoBannerRepo) Update(ctx context.Context, banner *entity.PromoBanner) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, banner)
	}
	return nil
}

func (f *fakePromoBannerRepo) Delete(ctx context.Context, id int) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

// newFakeRepository builds a Repository where every table is backed by
// an empty fake.
func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:        &fakeUserRepo{},
		Address:     &fakeAddressRepo{},
		Category:    &fakeCategoryRepo{},
		Product:     &fakeProductRepo{},
		Order:       &fakeOrderRepo{},
		OrderItem:   &fakeOrderItemRepo{},
		HeroSlide:   &fakeHeroSlideRepo{},
		PromoBanner: &fakePromoBannerRepo{},
	}
}
