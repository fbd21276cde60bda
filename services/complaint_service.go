package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"complaint-service-server/models"
)

var (
	ErrComplaintNotFound       = errors.New("complaint not found")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrInvalidLevel            = errors.New("invalid complaint level")
	ErrInvalidStatus           = errors.New("invalid complaint status")
	ErrEmployeeProfileRequired = errors.New("employee profile not found")
	ErrEmptyRemark             = errors.New("remark must not be empty")
)

// ComplaintService implements the complaint lifecycle: creation, assignment,
// status transitions, remarks, geolocation and filtered listings.
type ComplaintService struct {
	db *gorm.DB
}

// NewComplaintService creates a new complaint service
func NewComplaintService(db *gorm.DB) *ComplaintService {
	return &ComplaintService{db: db}
}

// CreateComplaintInput carries the fields an admin submits when registering
// a complaint. The creator comes from the authenticated principal.
type CreateComplaintInput struct {
	CustomerID  uint   `json:"customer_id" binding:"required"`
	ProductID   uint   `json:"product_id" binding:"required"`
	Level       string `json:"level" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Create registers a new complaint with status Pending and no assignee.
// Customer, product and level are validated before anything is written.
func (s *ComplaintService) Create(input CreateComplaintInput, createdBy models.User) (*models.Complaint, error) {
	level, ok := models.ParseComplaintLevel(input.Level)
	if !ok {
		return nil, ErrInvalidLevel
	}

	var customer models.Customer
	if err := s.db.First(&customer, input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	var product models.Product
	if err := s.db.First(&product, input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	complaint := models.Complaint{
		CustomerID:  input.CustomerID,
		ProductID:   input.ProductID,
		Level:       level,
		Description: input.Description,
		Status:      models.StatusPending,
		CreatedByID: createdBy.ID,
	}

	if err := s.db.Create(&complaint).Error; err != nil {
		return nil, err
	}

	return s.Get(complaint.ID)
}

// Update edits the reference fields of a complaint. Status and assignment
// are untouched by this path.
func (s *ComplaintService) Update(id uint, input CreateComplaintInput) (*models.Complaint, error) {
	level, ok := models.ParseComplaintLevel(input.Level)
	if !ok {
		return nil, ErrInvalidLevel
	}

	complaint, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	var customer models.Customer
	if err := s.db.First(&customer, input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	var product models.Product
	if err := s.db.First(&product, input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"customer_id": input.CustomerID,
		"product_id":  input.ProductID,
		"level":       level,
		"description": input.Description,
	}
	if err := s.db.Model(complaint).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Get loads a complaint with its references
func (s *ComplaintService) Get(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.db.
		Preload("Customer").
		Preload("Product").
		Preload("AssignedTo").
		Preload("AssignedTo.User").
		Preload("CreatedBy").
		Preload("Photos").
		First(&complaint, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

// Assign sets the assignee of a complaint to the given employee. A prior
// assignee is silently overwritten; re-assigning the same employee is a
// no-op. Last write wins under concurrent assignment.
func (s *ComplaintService) Assign(complaintID, employeeID uint) (*models.Complaint, error) {
	var employee models.Employee
	if err := s.db.First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	complaint, err := s.Get(complaintID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(complaint).Update("assigned_to_id", employee.ID).Error; err != nil {
		return nil, err
	}

	return s.Get(complaintID)
}

// Claim assigns a complaint to the principal's own employee profile. When
// the principal has no profile the complaint is left untouched.
func (s *ComplaintService) Claim(complaintID uint, principal models.User) (*models.Complaint, error) {
	employee, err := s.EmployeeProfile(principal.ID)
	if err != nil {
		return nil, err
	}
	return s.Assign(complaintID, employee.ID)
}

// EmployeeProfile resolves the employee record behind a user id
func (s *ComplaintService) EmployeeProfile(userID uint) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.Where("user_id = ?", userID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeProfileRequired
		}
		return nil, err
	}
	return &employee, nil
}

// UpdateStatus moves a complaint to the given status. Any of the three
// states may follow any other, repeatedly. An unrecognized status is
// rejected with ErrInvalidStatus and nothing is written.
func (s *ComplaintService) UpdateStatus(complaintID uint, status string) (*models.Complaint, error) {
	parsed, ok := models.ParseComplaintStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	complaint, err := s.Get(complaintID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(complaint).Update("status", parsed).Error; err != nil {
		return nil, err
	}

	return s.Get(complaintID)
}

// AddRemark appends a work note to a complaint on behalf of the principal's
// employee profile. Remarks are append-only.
func (s *ComplaintService) AddRemark(complaintID uint, principal models.User, text string) (*models.ComplaintRemark, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyRemark
	}

	employee, err := s.EmployeeProfile(principal.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.Get(complaintID); err != nil {
		return nil, err
	}

	remark := models.ComplaintRemark{
		ComplaintID: complaintID,
		EmployeeID:  employee.ID,
		Remark:      text,
	}
	if err := s.db.Create(&remark).Error; err != nil {
		return nil, err
	}

	return &remark, nil
}

// Remarks lists a complaint's remarks newest-first
func (s *ComplaintService) Remarks(complaintID uint) ([]models.ComplaintRemark, error) {
	var remarks []models.ComplaintRemark
	err := s.db.
		Preload("Employee").
		Preload("Employee.User").
		Where("complaint_id = ?", complaintID).
		Order("timestamp DESC, id DESC").
		Find(&remarks).Error
	return remarks, err
}

// UpdateLocation overwrites the complaint's coordinates. Zero is a valid
// latitude and longitude.
func (s *ComplaintService) UpdateLocation(complaintID uint, lat, lng float64) error {
	complaint, err := s.Get(complaintID)
	if err != nil {
		return err
	}

	return s.db.Model(complaint).Updates(map[string]interface{}{
		"location_lat": lat,
		"location_lng": lng,
	}).Error
}

// ComplaintFilter carries the optional, combinable listing filters. A zero
// field means no constraint.
type ComplaintFilter struct {
	AssignedToID *uint
	Unassigned   bool
	Status       string
	Date         string // calendar day, YYYY-MM-DD
	ProductID    *uint
	CustomerID   *uint
	Search       string // case-insensitive substring over description
}

// List returns complaints matching the filter, newest first
func (s *ComplaintService) List(filter ComplaintFilter) ([]models.Complaint, error) {
	query := s.db.
		Preload("Customer").
		Preload("Product").
		Preload("AssignedTo").
		Preload("AssignedTo.User").
		Model(&models.Complaint{})

	if filter.AssignedToID != nil {
		query = query.Where("assigned_to_id = ?", *filter.AssignedToID)
	}
	if filter.Unassigned {
		query = query.Where("assigned_to_id IS NULL")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		query = query.Where("DATE(created_at) = ?", filter.Date)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var complaints []models.Complaint
	err := query.Order("created_at DESC, id DESC").Find(&complaints).Error
	return complaints, err
}

// DashboardStats holds the admin dashboard counters
type DashboardStats struct {
	TotalEmployees    int64 `json:"total_employees"`
	TotalCustomers    int64 `json:"total_customers"`
	TotalProducts     int64 `json:"total_products"`
	TotalComplaints   int64 `json:"total_complaints"`
	PendingComplaints int64 `json:"pending_complaints"`
	ClosedComplaints  int64 `json:"closed_complaints"`
}

// Stats computes the admin dashboard counters
func (s *ComplaintService) Stats() (*DashboardStats, error) {
	var stats DashboardStats

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalEmployees, s.db.Model(&models.Employee{})},
		{&stats.TotalCustomers, s.db.Model(&models.Customer{})},
		{&stats.TotalProducts, s.db.Model(&models.Product{})},
		{&stats.TotalComplaints, s.db.Model(&models.Complaint{})},
		{&stats.PendingComplaints, s.db.Model(&models.Complaint{}).Where("status = ?", models.StatusPending)},
		{&stats.ClosedComplaints, s.db.Model(&models.Complaint{}).Where("status = ?", models.StatusClosed)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

// EmployeeDashboard returns the principal's assigned count and the global
// unassigned count. A missing profile yields zero assigned.
func (s *ComplaintService) EmployeeDashboard(userID uint) (assigned, unassigned int64, err error) {
	if employee, perr := s.EmployeeProfile(userID); perr == nil {
		if err = s.db.Model(&models.Complaint{}).
			Where("assigned_to_id = ?", employee.ID).
			Count(&assigned).Error; err != nil {
			return 0, 0, err
		}
	} else if !errors.Is(perr, ErrEmployeeProfileRequired) {
		return 0, 0, perr
	}

	if err = s.db.Model(&models.Complaint{}).
		Where("assigned_to_id IS NULL").
		Count(&unassigned).Error; err != nil {
		return 0, 0, err
	}

	return assigned, unassigned, nil
}
