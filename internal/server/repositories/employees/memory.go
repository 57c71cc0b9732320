package employees

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/dmitrijs2005/employeehub/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps employees in a map and enforces the same unique
// employee number and email as the database schema.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]models.Employee
	now  func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID: make(map[string]models.Employee),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// taken reports whether another record than skipID uses the employee
// number or email. Caller holds mu.
func (r *MemoryRepository) taken(e *models.Employee, skipID string) bool {
	for id, other := range r.byID {
		if id == skipID {
			continue
		}
		if other.Email == e.Email || (e.EmployeeID != "" && other.EmployeeID == e.EmployeeID) {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(e, "") {
		return nil, common.ErrorConflict
	}

	stored := *e
	stored.ID = uuid.NewString()
	stored.CreatedAt = r.now()
	stored.UpdatedAt = stored.CreatedAt
	r.byID[stored.ID] = stored

	return &stored, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		e := e
		result = append(result, &e)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &e, nil
}

func (r *MemoryRepository) GetForUpdate(ctx context.Context, id string) (*models.Employee, error) {
	return r.GetByID(ctx, id)
}

func (r *MemoryRepository) Update(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[e.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	next := *e
	next.EmployeeID = cur.EmployeeID
	if r.taken(&next, e.ID) {
		return nil, common.ErrorConflict
	}

	cur.Name = e.Name
	cur.Email = e.Email
	cur.Age = e.Age
	cur.Department = e.Department
	cur.Designation = e.Designation
	cur.DateOfJoining = e.DateOfJoining
	cur.ContactNumber = e.ContactNumber
	cur.Status = e.Status
	cur.Location = e.Location
	cur.PictureKey = e.PictureKey
	cur.UpdatedAt = r.now()
	r.byID[e.ID] = cur

	return &cur, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.byID, id)
	return &e, nil
}
