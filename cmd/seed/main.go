package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Bootstraps a fresh database with an admin account and a small sample data
// set: one employee, one customer, one product and a pending complaint.
// Safe to re-run, every insert skips existing rows.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	connString := os.Getenv("DB_URL")
	if connString == "" {
		connString = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			envOr("DB_HOST", "localhost"),
			envOr("DB_PORT", "5432"),
			envOr("DB_USER", "postgres"),
			envOr("DB_PASSWORD", "password"),
			envOr("DB_NAME", "complaint_service_db"),
			envOr("DB_SSL_MODE", "disable"),
		)
	}

	db, err := sql.Open("postgres", connString)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	adminHash := mustHash(envOr("SEED_ADMIN_PASSWORD", "admin12345"))
	employeeHash := mustHash(envOr("SEED_EMPLOYEE_PASSWORD", "employee12345"))

	var adminID int64
	err = db.QueryRow(`
		INSERT INTO users (username, first_name, last_name, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ('admin', 'System', 'Admin', 'admin@example.com', $1, 'admin', true, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE SET updated_at = NOW()
		RETURNING id`, adminHash).Scan(&adminID)
	if err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
	log.Printf("✅ Admin user ready (id=%d)", adminID)

	var employeeUserID int64
	err = db.QueryRow(`
		INSERT INTO users (username, first_name, last_name, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ('jdoe', 'Jordan', 'Doe', 'jdoe@example.com', $1, 'employee', true, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE SET updated_at = NOW()
		RETURNING id`, employeeHash).Scan(&employeeUserID)
	if err != nil {
		log.Fatal("Failed to seed employee user:", err)
	}

	var employeeID int64
	err = db.QueryRow(`
		INSERT INTO employees (user_id, phone, designation, salary, created_at, updated_at)
		VALUES ($1, '1234567890', 'Field Technician', 32000, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
		RETURNING id`, employeeUserID).Scan(&employeeID)
	if err != nil {
		log.Fatal("Failed to seed employee profile:", err)
	}
	log.Printf("✅ Employee ready (id=%d)", employeeID)

	var customerID int64
	err = db.QueryRow(`SELECT id FROM customers WHERE name = 'Acme'`).Scan(&customerID)
	if err == sql.ErrNoRows {
		err = db.QueryRow(`
			INSERT INTO customers (name, contact_number, email, address, created_at, updated_at)
			VALUES ('Acme', '+11234567890', 'a@acme.com', '1 Acme Way', NOW(), NOW())
			RETURNING id`).Scan(&customerID)
	}
	if err != nil {
		log.Fatal("Failed to seed customer:", err)
	}

	var productID int64
	err = db.QueryRow(`SELECT id FROM products WHERE name = 'Widget'`).Scan(&productID)
	if err == sql.ErrNoRows {
		err = db.QueryRow(`
			INSERT INTO products (name, price, tax, created_at, updated_at)
			VALUES ('Widget', 100.00, 10.00, NOW(), NOW())
			RETURNING id`).Scan(&productID)
	}
	if err != nil {
		log.Fatal("Failed to seed product:", err)
	}
	log.Printf("✅ Reference data ready (customer=%d, product=%d)", customerID, productID)

	var complaintCount int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM complaints`).Scan(&complaintCount); err != nil {
		log.Fatal("Failed to count complaints:", err)
	}
	if complaintCount == 0 {
		_, err = db.Exec(`
			INSERT INTO complaints (customer_id, product_id, level, description, status, created_by_id, created_at)
			VALUES ($1, $2, 'Level 2', 'Widget stopped working after two days', 'Pending', $3, NOW())`,
			customerID, productID, adminID)
		if err != nil {
			log.Fatal("Failed to seed complaint:", err)
		}
		log.Println("✅ Sample complaint created")
	}

	log.Println("✅ Seeding complete")
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}
	return string(hash)
}
