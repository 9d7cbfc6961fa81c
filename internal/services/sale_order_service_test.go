package services_test

import (
	"errors"
	"testing"

	"github.com/JoWinner/car-rental/internal/models"
	"github.com/JoWinner/car-rental/internal/services"

	"gorm.io/gorm"
)

type saleOrderRepoMock struct {
	createFn  func(order *models.SaleOrder) error
	getByIDFn func(id string) (*models.SaleOrder, error)
	updateFn  func(order *models.SaleOrder) error
}

func (m *saleOrderRepoMock) Create(order *models.SaleOrder) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(order)
}

func (m *saleOrderRepoMock) GetByID(id string) (*models.SaleOrder, error) {
	if m.getByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.getByIDFn(id)
}

func (m *saleOrderRepoMock) GetByUserID(userID uint) ([]models.SaleOrder, error) { return nil, nil }
func (m *saleOrderRepoMock) GetAll() ([]models.SaleOrder, error)                 { return nil, nil }

func (m *saleOrderRepoMock) Update(order *models.SaleOrder) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(order)
}

func saleCar() *models.Car {
	salePrice := 28500.0
	return &models.Car{ID: "car-1", Name: "BMW X5 M Sport", OnSale: true, SalePrice: &salePrice}
}

func saleOrderInput() services.SaleOrderInput {
	return services.SaleOrderInput{
		CarID: "car-1",
		Name:  "Jane Buyer",
		Email: "jane@example.com",
		Phone: "+15550100",
	}
}

func TestCreateOrderRequiredFields(t *testing.T) {
	svc := services.NewSaleOrderService(&saleOrderRepoMock{}, carRepoWith(saleCar()))

	cases := []struct {
		name   string
		mutate func(in *services.SaleOrderInput)
	}{
		{"missing car", func(in *services.SaleOrderInput) { in.CarID = "" }},
		{"missing name", func(in *services.SaleOrderInput) { in.Name = "" }},
		{"missing email", func(in *services.SaleOrderInput) { in.Email = "" }},
		{"missing phone", func(in *services.SaleOrderInput) { in.Phone = "" }},
	}

	for _, tc := range cases {
		input := saleOrderInput()
		tc.mutate(&input)
		if _, err := svc.CreateOrder(nil, input); !errors.Is(err, services.ErrValidation) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestCreateOrderCarNotOnSale(t *testing.T) {
	rentOnly := &models.Car{ID: "car-1", Name: "Toyota Camry XSE", OnRent: true}
	svc := services.NewSaleOrderService(&saleOrderRepoMock{}, carRepoWith(rentOnly))

	if _, err := svc.CreateOrder(nil, saleOrderInput()); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found for car without sale listing, got %v", err)
	}
}

func TestCreateOrderAnonymousVisitor(t *testing.T) {
	var created *models.SaleOrder
	repo := &saleOrderRepoMock{createFn: func(order *models.SaleOrder) error {
		created = order
		return nil
	}}
	svc := services.NewSaleOrderService(repo, carRepoWith(saleCar()))

	order, err := svc.CreateOrder(nil, saleOrderInput())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if created == nil {
		t.Fatal("expected order to reach the repository")
	}
	if order.UserID != nil {
		t.Errorf("anonymous order should have no user, got %v", *order.UserID)
	}
	if order.Status != string(models.SaleOrderPending) {
		t.Errorf("expected status PENDING, got %s", order.Status)
	}
}

func TestCreateOrderLinksAuthenticatedUser(t *testing.T) {
	svc := services.NewSaleOrderService(&saleOrderRepoMock{}, carRepoWith(saleCar()))

	user := &models.UserProfile{ID: 42}
	order, err := svc.CreateOrder(user, saleOrderInput())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.UserID == nil || *order.UserID != 42 {
		t.Errorf("expected order linked to user 42, got %v", order.UserID)
	}
}

func TestSaleOrderTransitions(t *testing.T) {
	cases := []struct {
		from, to models.SaleOrderStatus
		ok       bool
	}{
		{models.SaleOrderPending, models.SaleOrderProcessing, true},
		{models.SaleOrderPending, models.SaleOrderCancelled, true},
		{models.SaleOrderPending, models.SaleOrderCompleted, false},
		{models.SaleOrderProcessing, models.SaleOrderCompleted, true},
		{models.SaleOrderProcessing, models.SaleOrderCancelled, true},
		{models.SaleOrderProcessing, models.SaleOrderPending, false},
		{models.SaleOrderCompleted, models.SaleOrderCancelled, false},
		{models.SaleOrderCancelled, models.SaleOrderProcessing, false},
	}

	for _, tc := range cases {
		repo := &saleOrderRepoMock{getByIDFn: func(id string) (*models.SaleOrder, error) {
			return &models.SaleOrder{ID: id, CarID: "car-1", Status: string(tc.from)}, nil
		}}
		svc := services.NewSaleOrderService(repo, carRepoWith(saleCar()))

		order, err := svc.TransitionStatus("order-1", string(tc.to))
		if tc.ok {
			if err != nil {
				t.Errorf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
			} else if order.Status != string(tc.to) {
				t.Errorf("%s -> %s: status not applied, got %s", tc.from, tc.to, order.Status)
			}
		} else if !errors.Is(err, services.ErrInvalidTransition) {
			t.Errorf("%s -> %s: expected invalid-transition error, got %v", tc.from, tc.to, err)
		}
	}
}

func TestSaleOrderTransitionUnknownStatus(t *testing.T) {
	svc := services.NewSaleOrderService(&saleOrderRepoMock{}, carRepoWith(saleCar()))

	if _, err := svc.TransitionStatus("order-1", "SHIPPED"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
