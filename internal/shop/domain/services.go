package domain

import "context"

type UserService interface {
	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, newUser NewUser) (User, error)
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, productId int) (Product, error)
	CreateProduct(ctx context.Context, newProduct NewProduct) (Product, error)
}

type PurchaseService interface {
	PlacePurchase(ctx context.Context, request PurchaseRequest) (PurchaseReceipt, error)
}
