package service

import (
	"context"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory repository doubles. They honor the same sentinel contract as the
// real repositories (repository.ErrNotFound, repository.ErrDuplicateKey) so
// service error paths can be exercised without a database.

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// ---- accounts ----

type fakeAccountRepo struct {
	users     map[uuid.UUID]*model.User
	employees map[uuid.UUID]*model.Employee
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		users:     make(map[uuid.UUID]*model.User),
		employees: make(map[uuid.UUID]*model.Employee),
	}
}

func (f *fakeAccountRepo) CreateUser(_ context.Context, user *model.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateKey
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *fakeAccountRepo) GetUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (f *fakeAccountRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAccountRepo) ListUsers(_ context.Context, _, _ int) ([]model.User, int64, error) {
	users := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, int64(len(users)), nil
}

func (f *fakeAccountRepo) UpdateUser(_ context.Context, user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeAccountRepo) DeleteUser(_ context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeAccountRepo) CreateEmployee(_ context.Context, employee *model.Employee) error {
	if _, ok := f.users[employee.UserID]; !ok {
		return repository.ErrForeignKeyViolated
	}
	for _, existing := range f.employees {
		if existing.UserID == employee.UserID {
			return repository.ErrDuplicateKey
		}
	}
	employee.ID = uuid.New()
	f.employees[employee.ID] = employee
	return nil
}

func (f *fakeAccountRepo) GetEmployeeByID(_ context.Context, id uuid.UUID) (*model.Employee, error) {
	employee, ok := f.employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return employee, nil
}

func (f *fakeAccountRepo) GetEmployeeByUserID(_ context.Context, userID uuid.UUID) (*model.Employee, error) {
	for _, employee := range f.employees {
		if employee.UserID == userID {
			return employee, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAccountRepo) ListEmployees(_ context.Context, _, _ int) ([]model.Employee, int64, error) {
	employees := make([]model.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		employees = append(employees, *e)
	}
	return employees, int64(len(employees)), nil
}

func (f *fakeAccountRepo) UpdateEmployee(_ context.Context, employee *model.Employee) error {
	if _, ok := f.employees[employee.ID]; !ok {
		return repository.ErrNotFound
	}
	f.employees[employee.ID] = employee
	return nil
}

// ---- inventory ----

type fakeInventoryRepo struct {
	items map[uuid.UUID]*model.InventoryItem
	logs  []model.InventoryLog
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[uuid.UUID]*model.InventoryItem)}
}

func (f *fakeInventoryRepo) CreateItem(_ context.Context, item *model.InventoryItem) error {
	item.ID = uuid.New()
	f.items[item.ID] = item
	return nil
}

func (f *fakeInventoryRepo) GetItem(_ context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeInventoryRepo) UpdateItem(_ context.Context, item *model.InventoryItem) error {
	stored, ok := f.items[item.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = item.Name
	stored.ItemType = item.ItemType
	return nil
}

func (f *fakeInventoryRepo) DeleteItem(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeInventoryRepo) ListItems(_ context.Context, _, _ int) ([]model.InventoryItem, int64, error) {
	items := make([]model.InventoryItem, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, *item)
	}
	return items, int64(len(items)), nil
}

func (f *fakeInventoryRepo) ApplyChange(_ context.Context, itemID uuid.UUID, delta int, at *time.Time) (*model.InventoryLog, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	entry := model.InventoryLog{
		ID:              uuid.New(),
		Timestamp:       time.Now(),
		ChangeAmount:    delta,
		InventoryItemID: itemID,
	}
	if at != nil {
		entry.Timestamp = *at
	}

	f.logs = append(f.logs, entry)
	item.Quantity += delta
	return &entry, nil
}

func (f *fakeInventoryRepo) ListLogs(_ context.Context, itemID uuid.UUID, _, _ int) ([]model.InventoryLog, int64, error) {
	var logs []model.InventoryLog
	for _, entry := range f.logs {
		if entry.InventoryItemID == itemID {
			logs = append(logs, entry)
		}
	}
	return logs, int64(len(logs)), nil
}

func (f *fakeInventoryRepo) RecomputeQuantity(_ context.Context, itemID uuid.UUID) (int64, error) {
	var sum int64
	for _, entry := range f.logs {
		if entry.InventoryItemID == itemID {
			sum += int64(entry.ChangeAmount)
		}
	}
	return sum, nil
}

// ---- maintenance ----

type fakeMaintenanceRepo struct {
	equipment map[uuid.UUID]*model.Equipment
	records   map[uuid.UUID]*model.MaintenanceLog
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{
		equipment: make(map[uuid.UUID]*model.Equipment),
		records:   make(map[uuid.UUID]*model.MaintenanceLog),
	}
}

func (f *fakeMaintenanceRepo) CreateEquipment(_ context.Context, eq *model.Equipment) error {
	eq.ID = uuid.New()
	f.equipment[eq.ID] = eq
	return nil
}

func (f *fakeMaintenanceRepo) GetEquipment(_ context.Context, id uuid.UUID) (*model.Equipment, error) {
	eq, ok := f.equipment[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return eq, nil
}

func (f *fakeMaintenanceRepo) UpdateEquipment(_ context.Context, eq *model.Equipment) error {
	if _, ok := f.equipment[eq.ID]; !ok {
		return repository.ErrNotFound
	}
	f.equipment[eq.ID] = eq
	return nil
}

func (f *fakeMaintenanceRepo) DeleteEquipment(_ context.Context, id uuid.UUID) error {
	if _, ok := f.equipment[id]; !ok {
		return repository.ErrNotFound
	}
	for _, rec := range f.records {
		if rec.EquipmentID == id {
			return repository.ErrForeignKeyViolated
		}
	}
	delete(f.equipment, id)
	return nil
}

func (f *fakeMaintenanceRepo) ListEquipment(_ context.Context, _, _ int) ([]model.Equipment, int64, error) {
	eqs := make([]model.Equipment, 0, len(f.equipment))
	for _, eq := range f.equipment {
		eqs = append(eqs, *eq)
	}
	return eqs, int64(len(eqs)), nil
}

func (f *fakeMaintenanceRepo) CreateLog(_ context.Context, rec *model.MaintenanceLog) error {
	rec.ID = uuid.New()
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeMaintenanceRepo) GetLog(_ context.Context, id uuid.UUID) (*model.MaintenanceLog, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return rec, nil
}

func (f *fakeMaintenanceRepo) UpdateLog(_ context.Context, rec *model.MaintenanceLog) error {
	if _, ok := f.records[rec.ID]; !ok {
		return repository.ErrNotFound
	}
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeMaintenanceRepo) DeleteLog(_ context.Context, id uuid.UUID) error {
	if _, ok := f.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeMaintenanceRepo) ListLogs(_ context.Context, pendingOnly bool, _, _ int) ([]model.MaintenanceLog, int64, error) {
	var recs []model.MaintenanceLog
	for _, rec := range f.records {
		if pendingOnly && rec.CompletionDate != nil {
			continue
		}
		recs = append(recs, *rec)
	}
	return recs, int64(len(recs)), nil
}

func (f *fakeMaintenanceRepo) ListLogsByEquipment(_ context.Context, equipmentID uuid.UUID) ([]model.MaintenanceLog, error) {
	var recs []model.MaintenanceLog
	for _, rec := range f.records {
		if rec.EquipmentID == equipmentID {
			recs = append(recs, *rec)
		}
	}
	return recs, nil
}

func (f *fakeMaintenanceRepo) Complete(_ context.Context, id uuid.UUID, at time.Time) (*model.MaintenanceLog, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if rec.CompletionDate == nil {
		rec.CompletionDate = &at
	}
	return rec, nil
}

// ---- reference ----

type fakeReferenceRepo struct {
	pricing   map[string]decimal.Decimal
	saved     []model.BoardFootCalculator
	questions map[uuid.UUID]*model.QuestionAndAnswer
	grants    map[uuid.UUID]*model.RoleModule
}

func newFakeReferenceRepo() *fakeReferenceRepo {
	return &fakeReferenceRepo{
		pricing:   make(map[string]decimal.Decimal),
		questions: make(map[uuid.UUID]*model.QuestionAndAnswer),
		grants:    make(map[uuid.UUID]*model.RoleModule),
	}
}

func (f *fakeReferenceRepo) CreateCalculation(_ context.Context, calc *model.BoardFootCalculator) error {
	calc.ID = uuid.New()
	calc.CreatedAt = time.Now()
	f.saved = append(f.saved, *calc)
	return nil
}

func (f *fakeReferenceRepo) GetCalculation(_ context.Context, id uuid.UUID) (*model.BoardFootCalculator, error) {
	for i := range f.saved {
		if f.saved[i].ID == id {
			return &f.saved[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeReferenceRepo) DeleteCalculation(_ context.Context, id uuid.UUID) error {
	for i := range f.saved {
		if f.saved[i].ID == id {
			f.saved = append(f.saved[:i], f.saved[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeReferenceRepo) ListCalculations(_ context.Context, publicOnly bool, _, _ int) ([]model.BoardFootCalculator, int64, error) {
	var calcs []model.BoardFootCalculator
	for _, c := range f.saved {
		if publicOnly && !c.IsPublic {
			continue
		}
		calcs = append(calcs, c)
	}
	return calcs, int64(len(calcs)), nil
}

func (f *fakeReferenceRepo) FindPricingByTreeType(_ context.Context, treeType string) (*model.BoardFootCalculator, error) {
	price, ok := f.pricing[treeType]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &model.BoardFootCalculator{
		TreeType:          treeType,
		PricePerBoardFoot: price,
		IsPublic:          true,
	}, nil
}

func (f *fakeReferenceRepo) CreateQuestion(_ context.Context, qa *model.QuestionAndAnswer) error {
	qa.ID = uuid.New()
	f.questions[qa.ID] = qa
	return nil
}

func (f *fakeReferenceRepo) GetQuestion(_ context.Context, id uuid.UUID) (*model.QuestionAndAnswer, error) {
	qa, ok := f.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return qa, nil
}

func (f *fakeReferenceRepo) UpdateQuestion(_ context.Context, qa *model.QuestionAndAnswer) error {
	if _, ok := f.questions[qa.ID]; !ok {
		return repository.ErrNotFound
	}
	f.questions[qa.ID] = qa
	return nil
}

func (f *fakeReferenceRepo) DeleteQuestion(_ context.Context, id uuid.UUID) error {
	if _, ok := f.questions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.questions, id)
	return nil
}

func (f *fakeReferenceRepo) ListQuestions(_ context.Context, includePrivate bool, _, _ int) ([]model.QuestionAndAnswer, int64, error) {
	var qas []model.QuestionAndAnswer
	for _, qa := range f.questions {
		if !includePrivate && qa.IsPrivate {
			continue
		}
		qas = append(qas, *qa)
	}
	return qas, int64(len(qas)), nil
}

func (f *fakeReferenceRepo) CreateRoleModule(_ context.Context, rm *model.RoleModule) error {
	rm.ID = uuid.New()
	f.grants[rm.ID] = rm
	return nil
}

func (f *fakeReferenceRepo) DeleteRoleModule(_ context.Context, id uuid.UUID) error {
	if _, ok := f.grants[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.grants, id)
	return nil
}

func (f *fakeReferenceRepo) ListRoleModules(_ context.Context) ([]model.RoleModule, error) {
	grants := make([]model.RoleModule, 0, len(f.grants))
	for _, rm := range f.grants {
		grants = append(grants, *rm)
	}
	return grants, nil
}

func (f *fakeReferenceRepo) HasAccess(_ context.Context, role, moduleName string) (bool, error) {
	for _, rm := range f.grants {
		if rm.Role == role && rm.ModuleName == moduleName {
			return true, nil
		}
	}
	return false, nil
}

// ---- sales ----

type fakeSalesRepo struct {
	customers map[uuid.UUID]*model.Customer
	orders    map[uuid.UUID]*model.SalesOrder
}

func newFakeSalesRepo() *fakeSalesRepo {
	return &fakeSalesRepo{
		customers: make(map[uuid.UUID]*model.Customer),
		orders:    make(map[uuid.UUID]*model.SalesOrder),
	}
}

func (f *fakeSalesRepo) CreateCustomer(_ context.Context, customer *model.Customer) error {
	customer.ID = uuid.New()
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeSalesRepo) GetCustomer(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return customer, nil
}

func (f *fakeSalesRepo) UpdateCustomer(_ context.Context, customer *model.Customer) error {
	if _, ok := f.customers[customer.ID]; !ok {
		return repository.ErrNotFound
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeSalesRepo) DeleteCustomer(_ context.Context, id uuid.UUID) error {
	if _, ok := f.customers[id]; !ok {
		return repository.ErrNotFound
	}
	for _, order := range f.orders {
		if order.CustomerID == id {
			return repository.ErrForeignKeyViolated
		}
	}
	delete(f.customers, id)
	return nil
}

func (f *fakeSalesRepo) ListCustomers(_ context.Context, _, _ int) ([]model.Customer, int64, error) {
	customers := make([]model.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		customers = append(customers, *c)
	}
	return customers, int64(len(customers)), nil
}

func (f *fakeSalesRepo) CreateOrder(_ context.Context, order *model.SalesOrder) error {
	if _, ok := f.customers[order.CustomerID]; !ok {
		return repository.ErrForeignKeyViolated
	}
	order.ID = uuid.New()
	order.CreatedAt = time.Now()
	f.orders[order.ID] = order
	return nil
}

func (f *fakeSalesRepo) GetOrder(_ context.Context, id uuid.UUID) (*model.SalesOrder, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeSalesRepo) UpdateOrder(_ context.Context, order *model.SalesOrder) error {
	if _, ok := f.orders[order.ID]; !ok {
		return repository.ErrNotFound
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeSalesRepo) UpdateOrderStatus(_ context.Context, id uuid.UUID, status string) error {
	order, ok := f.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	order.Status = status
	return nil
}

func (f *fakeSalesRepo) DeleteOrder(_ context.Context, id uuid.UUID) error {
	if _, ok := f.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeSalesRepo) ListOrders(_ context.Context, _, _ int) ([]model.SalesOrder, int64, error) {
	orders := make([]model.SalesOrder, 0, len(f.orders))
	for _, o := range f.orders {
		orders = append(orders, *o)
	}
	return orders, int64(len(orders)), nil
}

// ---- scheduling ----

type fakeScheduleRepo struct {
	shifts map[uuid.UUID]*model.Shift
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{shifts: make(map[uuid.UUID]*model.Shift)}
}

func (f *fakeScheduleRepo) Create(_ context.Context, shift *model.Shift) error {
	shift.ID = uuid.New()
	f.shifts[shift.ID] = shift
	return nil
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Shift, error) {
	shift, ok := f.shifts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return shift, nil
}

func (f *fakeScheduleRepo) Update(_ context.Context, shift *model.Shift) error {
	if _, ok := f.shifts[shift.ID]; !ok {
		return repository.ErrNotFound
	}
	f.shifts[shift.ID] = shift
	return nil
}

func (f *fakeScheduleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.shifts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.shifts, id)
	return nil
}

func (f *fakeScheduleRepo) List(_ context.Context, _, _ int) ([]model.Shift, int64, error) {
	shifts := make([]model.Shift, 0, len(f.shifts))
	for _, s := range f.shifts {
		shifts = append(shifts, *s)
	}
	return shifts, int64(len(shifts)), nil
}

func (f *fakeScheduleRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]model.Shift, error) {
	var shifts []model.Shift
	for _, s := range f.shifts {
		if s.EmployeeID == employeeID {
			shifts = append(shifts, *s)
		}
	}
	return shifts, nil
}
