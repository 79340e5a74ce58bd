package impl

import (
	"time"

	"storefront/internal/domain/entity"
)

// Static catalog served when the remote API cannot be reached. The builders
// return fresh slices so that callers may modify what they receive.

const (
	seedCategoryImage = "/api/placeholder/300/200"
	seedProductImage  = "/api/placeholder/300/300"
)

var seedTimestamp = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func seedCategories() []entity.Category {
	category := func(id int64, name, description string) entity.Category {
		image := seedCategoryImage

		return entity.Category{
			ID:          id,
			Name:        name,
			Description: description,
			Image:       &image,
			CreatedAt:   seedTimestamp,
			UpdatedAt:   seedTimestamp,
		}
	}

	return []entity.Category{
		category(1, "Electronics", "Latest smartphones, laptops, and gadgets"),
		category(2, "Books", "Educational and entertainment books"),
		category(3, "Fashion", "Clothing and accessories for all ages"),
		category(4, "Home & Kitchen", "Everything for your home and kitchen"),
	}
}

const singleProductSeeds = 3

func seedProducts() []entity.Product {
	names := make(map[int64]string)
	for _, c := range seedCategories() {
		names[c.ID] = c.Name
	}

	product := func(id int64, name, description string, rupees, category int64, stock int) entity.Product {
		return entity.Product{
			ID:           id,
			Name:         name,
			Description:  description,
			Price:        entity.Rupees(rupees),
			Image:        seedProductImage,
			Category:     category,
			CategoryName: names[category],
			Stock:        stock,
			IsActive:     true,
			IsInStock:    stock > 0,
			CreatedAt:    seedTimestamp,
			UpdatedAt:    seedTimestamp,
		}
	}

	return []entity.Product{
		product(1, "Samsung Galaxy M14 5G", "Latest smartphone with 5G connectivity and amazing camera", 14999, 1, 50),
		product(2, "Dell Inspiron Laptop", "Powerful laptop for work and entertainment", 45999, 1, 25),
		product(3, "Python Programming Book", "Learn Python programming from basics to advanced", 599, 2, 100),
		product(4, "Cotton T-Shirt", "Comfortable cotton t-shirt for everyday wear", 299, 3, 200),
		product(5, "Stainless Steel Water Bottle", "Insulated water bottle keeps drinks cold for 24 hours", 399, 4, 75),
		product(6, "Wireless Bluetooth Headphones", "High-quality sound with noise cancellation", 2499, 1, 40),
		product(7, "JavaScript Guide Book", "Complete guide to modern JavaScript development", 799, 2, 80),
		product(8, "Non-Stick Cookware Set", "Complete kitchen set with 5 pieces", 1999, 4, 30),
	}
}

// seedProductsIn filters the seed products to one category; nil keeps them all.
func seedProductsIn(categoryID *int64) []entity.Product {
	all := seedProducts()
	if categoryID == nil {
		return all
	}

	filtered := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if p.Category == *categoryID {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// seedProduct looks id up in the short product-page list, which only covers
// the first three products.
func seedProduct(id int64) (*entity.Product, bool) {
	for _, p := range seedProducts()[:singleProductSeeds] {
		if p.ID == id {
			return &p, true
		}
	}

	return nil, false
}

func seedDashboardStats() *entity.DashboardStats {
	order := func(
		id int64, name, phone, email, address string,
		total int64, status entity.OrderStatus, payment entity.PaymentStatus,
		created string, item entity.OrderItem,
	) entity.Order {
		createdAt, _ := time.Parse(time.RFC3339, created)
		item.Order = id

		return entity.Order{
			ID:              id,
			CustomerName:    name,
			CustomerPhone:   phone,
			CustomerEmail:   email,
			ShippingAddress: address,
			TotalAmount:     entity.Rupees(total),
			ShippingCharge:  entity.Rupees(50),
			OrderStatus:     status,
			PaymentStatus:   payment,
			CreatedAt:       createdAt,
			UpdatedAt:       createdAt,
			Items:           []entity.OrderItem{item},
		}
	}

	return &entity.DashboardStats{
		TotalOrders:      47,
		PendingPayments:  12,
		VerifiedPayments: 35,
		TotalProducts:    8,
		LowStockProducts: 2,
		TotalRevenue:     entity.Rupees(125000),
		RecentOrders: []entity.Order{
			order(1001, "Rajesh Kumar", "+91 9876543210", "rajesh@example.com",
				"123 Main Street, Village Name, District, State - 123456",
				1250, entity.OrderStatusPaymentVerified, entity.PaymentStatusVerified, "2024-01-15T10:30:00Z",
				entity.NewOrderItem(1, 1, "Samsung Mobile Phone", 1, entity.Rupees(1200))),
			order(1002, "Priya Sharma", "+91 9876543211", "priya@example.com",
				"456 Secondary Road, Another Village, District, State - 123457",
				850, entity.OrderStatusPendingPayment, entity.PaymentStatusPending, "2024-01-14T14:20:00Z",
				entity.NewOrderItem(2, 3, "Python Programming Book", 1, entity.Rupees(800))),
			order(1003, "Amit Singh", "+91 9876543212", "amit@example.com",
				"789 Third Lane, Third Village, District, State - 123458",
				650, entity.OrderStatusPaymentVerified, entity.PaymentStatusVerified, "2024-01-13T09:15:00Z",
				entity.NewOrderItem(3, 4, "Cotton T-Shirt", 1, entity.Rupees(600))),
		},
	}
}
