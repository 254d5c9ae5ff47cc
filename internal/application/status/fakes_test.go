package status_test

import (
	"context"
	"fmt"

	"github.com/jhoicas/Calidad-api/internal/domain/entity"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los tests del paquete status.
//
// Imitan la semántica relevante de Postgres: CreateIfAbsent respeta la unicidad
// (serial_no, subtask_id), GetByID devuelve nil sin error cuando no hay fila, y
// las lecturas devuelven copias para que los mutadores del caso de uso no
// toquen el "almacén" sin pasar por Update.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSerialRepo struct {
	serials map[string]*entity.ProductSerial
}

func newFakeSerialRepo(serials ...*entity.ProductSerial) *fakeSerialRepo {
	r := &fakeSerialRepo{serials: map[string]*entity.ProductSerial{}}
	for _, s := range serials {
		r.serials[s.SerialNo] = s
	}
	return r
}

func (r *fakeSerialRepo) Create(serial *entity.ProductSerial) error {
	r.serials[serial.SerialNo] = serial
	return nil
}

func (r *fakeSerialRepo) GetBySerialNo(serialNo string) (*entity.ProductSerial, error) {
	s, ok := r.serials[serialNo]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSerialRepo) ListByCategory(categoryID string) ([]*entity.ProductSerial, error) {
	var out []*entity.ProductSerial
	for _, s := range r.serials {
		if s.CategoryID == categoryID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSerialRepo) List(limit, offset int) ([]*entity.ProductSerial, error) {
	var out []*entity.ProductSerial
	for _, s := range r.serials {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSerialRepo) Update(serial *entity.ProductSerial) error {
	if _, ok := r.serials[serial.SerialNo]; !ok {
		return fmt.Errorf("serial %s no existe", serial.SerialNo)
	}
	r.serials[serial.SerialNo] = serial
	return nil
}

func (r *fakeSerialRepo) Delete(serialNo string) error {
	delete(r.serials, serialNo)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.ProductCategory
}

func newFakeCategoryRepo(categories ...*entity.ProductCategory) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: map[string]*entity.ProductCategory{}}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.ProductCategory) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.ProductCategory, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) List(limit, offset int) ([]*entity.ProductCategory, error) {
	var out []*entity.ProductCategory
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.ProductCategory) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

type fakeSubTaskRepo struct {
	subtasks []*entity.SubTask
}

func (r *fakeSubTaskRepo) Create(st *entity.SubTask) error {
	r.subtasks = append(r.subtasks, st)
	return nil
}

func (r *fakeSubTaskRepo) GetByID(id string) (*entity.SubTask, error) {
	for _, st := range r.subtasks {
		if st.ID == id {
			cp := *st
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSubTaskRepo) List(limit, offset int) ([]*entity.SubTask, error) {
	out := make([]*entity.SubTask, 0, len(r.subtasks))
	for _, st := range r.subtasks {
		cp := *st
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSubTaskRepo) ListByTask(taskID string) ([]*entity.SubTask, error) {
	var out []*entity.SubTask
	for _, st := range r.subtasks {
		if st.TaskID == taskID {
			cp := *st
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSubTaskRepo) ListByCategory(categoryID string) ([]*entity.SubTask, error) {
	// El fake no modela la relación task→category; los tests registran aquí
	// directamente las subtareas de la categoría bajo prueba.
	out := make([]*entity.SubTask, 0, len(r.subtasks))
	for _, st := range r.subtasks {
		cp := *st
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSubTaskRepo) Update(st *entity.SubTask) error { return nil }
func (r *fakeSubTaskRepo) Delete(id string) error          { return nil }

// fakeStatusRepo almacena filas de estado con unicidad (serial_no, subtask_id)
// y conserva el orden de inserción para que ListViewBySerial sea determinista.
type fakeStatusRepo struct {
	order        []string // ids en orden de inserción
	rows         map[string]*entity.SerialSubTaskStatus
	subtaskNames map[string]string // subtask_id → nombre, para las vistas
	taskBySubNo  map[string]string // subtask_id → task_id
	taskNames    map[string]string
	productName  string

	failUpdateOnID string // simula un fallo de almacenamiento en Update
}

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{
		rows:         map[string]*entity.SerialSubTaskStatus{},
		subtaskNames: map[string]string{},
		taskBySubNo:  map[string]string{},
		taskNames:    map[string]string{},
	}
}

func (r *fakeStatusRepo) CreateIfAbsent(row *entity.SerialSubTaskStatus) (bool, error) {
	for _, existing := range r.rows {
		if existing.SerialNo == row.SerialNo && existing.SubTaskID == row.SubTaskID {
			return false, nil
		}
	}
	cp := *row
	r.rows[row.ID] = &cp
	r.order = append(r.order, row.ID)
	return true, nil
}

func (r *fakeStatusRepo) GetByID(id string) (*entity.SerialSubTaskStatus, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (r *fakeStatusRepo) GetBySerialAndSubTask(serialNo, subtaskID string) (*entity.SerialSubTaskStatus, error) {
	for _, row := range r.rows {
		if row.SerialNo == serialNo && row.SubTaskID == subtaskID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStatusRepo) Update(row *entity.SerialSubTaskStatus) error {
	if r.failUpdateOnID != "" && row.ID == r.failUpdateOnID {
		return fmt.Errorf("fallo de almacenamiento simulado")
	}
	if _, ok := r.rows[row.ID]; !ok {
		return fmt.Errorf("fila %s no existe", row.ID)
	}
	cp := *row
	r.rows[row.ID] = &cp
	return nil
}

func (r *fakeStatusRepo) ListViewBySerial(serialNo string) ([]*repository.SerialSubTaskStatusView, error) {
	var out []*repository.SerialSubTaskStatusView
	for _, id := range r.order {
		row := r.rows[id]
		if row.SerialNo != serialNo {
			continue
		}
		taskID := r.taskBySubNo[row.SubTaskID]
		out = append(out, &repository.SerialSubTaskStatusView{
			ID:            row.ID,
			SerialNo:      row.SerialNo,
			ProductName:   r.productName,
			TaskID:        taskID,
			TaskName:      r.taskNames[taskID],
			SubTaskID:     row.SubTaskID,
			SubTaskName:   r.subtaskNames[row.SubTaskID],
			Status:        row.Status,
			UpdatedBy:     row.UpdatedBy,
			Remark:        row.Remark,
			MeasuredValue: row.MeasuredValue,
			UpdateTime:    row.UpdateTime,
		})
	}
	return out, nil
}

func (r *fakeStatusRepo) CountBySerial(serialNo string) (int, error) {
	n := 0
	for _, row := range r.rows {
		if row.SerialNo == serialNo {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner ejecuta el callback directamente sobre el repo en memoria. Si
// el callback falla, restaura el estado previo para imitar el Rollback.
type fakeTxRunner struct {
	statusRepo *fakeStatusRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(statusRepo repository.SerialStatusRepository) error) error {
	snapshot := map[string]entity.SerialSubTaskStatus{}
	for id, row := range tr.statusRepo.rows {
		snapshot[id] = *row
	}
	orderSnapshot := append([]string(nil), tr.statusRepo.order...)

	if err := fn(tr.statusRepo); err != nil {
		tr.statusRepo.rows = map[string]*entity.SerialSubTaskStatus{}
		for id := range snapshot {
			row := snapshot[id]
			tr.statusRepo.rows[id] = &row
		}
		tr.statusRepo.order = orderSnapshot
		return err
	}
	return nil
}
