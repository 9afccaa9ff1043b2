package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"merchflow/internal/config"
	"merchflow/internal/database"
	"merchflow/internal/domain/auth"
	"merchflow/internal/domain/camp"
	"merchflow/internal/domain/chat"
	"merchflow/internal/domain/lead"
	"merchflow/internal/domain/notification"
	"merchflow/internal/domain/order"
	"merchflow/internal/domain/organization"
	"merchflow/internal/domain/staff"
	"merchflow/internal/pkg/permissions"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&auth.User{},
		&lead.Lead{},
		&order.Order{},
		&organization.Organization{},
		&staff.Member{},
		&camp.Camp{},
		&camp.Registration{},
		&chat.Channel{},
		&chat.Membership{},
		&chat.Message{},
		&notification.Notification{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children before parents)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM channel_messages")
	db.Exec("DELETE FROM channel_members")
	db.Exec("DELETE FROM channels")
	db.Exec("DELETE FROM camp_registrations")
	db.Exec("DELETE FROM camps")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM staff_members")
	db.Exec("DELETE FROM organizations")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := auth.User{
		Email:        "admin@merchflow.dev",
		PasswordHash: string(adminHash),
		Role:         auth.RoleAdmin,
		Name:         "Operations Admin",
		Active:       true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@merchflow.dev / admin123")

	reps := make([]auth.User, 0, 3)
	for i, email := range []string{"mara@merchflow.dev", "tom@merchflow.dev", "lena@merchflow.dev"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("sales123"), bcrypt.DefaultCost)
		rep := auth.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         auth.RoleSalesRep,
			Name:         fmt.Sprintf("Sales Rep %d", i+1),
			Phone:        fmt.Sprintf("+1 555 010 10%02d", i+1),
			Active:       true,
		}
		db.Create(&rep)
		reps = append(reps, rep)
	}

	// One rep gets the explicit order-deletion grant
	reps[0].SetPermissionList([]string{permissions.DeleteOrders})
	db.Save(&reps[0])

	designerHash, _ := bcrypt.GenerateFromPassword([]byte("design123"), bcrypt.DefaultCost)
	designer := auth.User{
		Email:        "ivy@merchflow.dev",
		PasswordHash: string(designerHash),
		Role:         auth.RoleDesigner,
		Name:         "Ivy Designer",
		Active:       true,
	}
	db.Create(&designer)

	makerHash, _ := bcrypt.GenerateFromPassword([]byte("maker123"), bcrypt.DefaultCost)
	maker := auth.User{
		Email:        "gus@merchflow.dev",
		PasswordHash: string(makerHash),
		Role:         auth.RoleManufacturer,
		Name:         "Gus Maker",
		Active:       true,
	}
	db.Create(&maker)

	// ================== ORGANIZATIONS ==================
	log.Println("Creating organizations...")

	orgs := []organization.Organization{
		{Name: "Northside Athletics", ContactEmail: "office@northside.test", Phone: "+1 555 020 0001"},
		{Name: "Riverbend Events Co", ContactEmail: "hello@riverbend.test"},
	}
	for i := range orgs {
		db.Create(&orgs[i])
	}

	// ================== STAFF ==================
	log.Println("Creating staff...")

	members := []staff.Member{
		{UserID: &reps[0].ID, Name: reps[0].Name, Title: "Account Executive", Department: staff.DeptSales, Email: reps[0].Email, Active: true},
		{UserID: &designer.ID, Name: designer.Name, Title: "Lead Designer", Department: staff.DeptDesign, Email: designer.Email, Active: true},
		{UserID: &maker.ID, Name: maker.Name, Title: "Print Operator", Department: staff.DeptManufacturing, Email: maker.Email, Active: true},
		{Name: "Seasonal Packer", Department: staff.DeptOperations, Active: true},
	}
	for i := range members {
		db.Create(&members[i])
	}

	// ================== LEADS ==================
	log.Println("Creating leads...")

	now := time.Now()
	fourDaysAgo := now.Add(-4 * 24 * time.Hour)

	pool := []lead.Lead{
		{Name: "Jane Doe", Email: "jane@acme.test", Phone: "+1 555 030 0001", Source: "webform", Value: "1250.50", OrganizationID: &orgs[0].ID},
		{Name: "Carlos Vega", Email: "carlos@riverbend.test", Source: "referral", Value: "840", OrganizationID: &orgs[1].ID},
		{Name: "Priya Shah", Email: "priya@example.test", Source: "tradeshow"},
	}
	for i := range pool {
		pool[i].Status = lead.StatusNew
		db.Create(&pool[i])
	}

	// One lead already claimed long enough ago to be convertible
	claimed := lead.Lead{
		Name:       "Omar Haddad",
		Email:      "omar@example.test",
		Source:     "webform",
		Status:     lead.StatusQualified,
		Value:      "2300",
		SalesRepID: &reps[1].ID,
		ClaimedAt:  &fourDaysAgo,
	}
	db.Create(&claimed)

	// ================== ORDERS ==================
	log.Println("Creating orders...")

	o := order.Order{
		Reference:          "ORD-SEED01",
		CustomerName:       "Northside Athletics",
		CustomerEmail:      "office@northside.test",
		TotalAmount:        1980,
		Status:             order.StatusProcessing,
		AssignedSalesRepID: &reps[0].ID,
		AssignedDesignerID: &designer.ID,
		OrganizationID:     &orgs[0].ID,
		PriorityLevel:      1,
	}
	if err := o.SetItems([]order.LineItem{
		{Name: "Team hoodie", SKU: "HD-100", Sizes: map[string]int{"M": 20, "L": 15}, UnitPrice: 36},
		{Name: "Training tee", SKU: "TT-220", Sizes: map[string]int{"S": 10, "M": 20}, UnitPrice: 18},
	}); err != nil {
		log.Fatal(err)
	}
	db.Create(&o)

	// ================== CAMPS ==================
	log.Println("Creating camps...")

	summer := camp.Camp{
		Name:      "Summer Skills Camp",
		Location:  "Lakeside Field",
		StartDate: now.AddDate(0, 1, 0),
		EndDate:   now.AddDate(0, 1, 5),
		Capacity:  60,
		Notes:     "Full kit order due two weeks before start",
	}
	db.Create(&summer)
	db.Create(&camp.Registration{CampID: summer.ID, Name: "Northside U14", Email: "coach@northside.test", Size: 18})

	log.Println("Seed complete")
}
