package places

import "sync"

// Field состояние поля ввода места с подсказками.
//
// Нажатие на подсказку (PointerDown) синхронно ставит флаг ожидаемого выбора.
// Blur скрывает список сразу, если выбора не ожидается; иначе скрытие
// выполняет последующий Select. Если нажатие отпущено без выбора
// (PointerCancel), отложенное скрытие выполняется там же.
type Field struct {
	mu          sync.Mutex
	catalog     []string
	value       string
	suggestions []string
	visible     bool
	pending     bool

	// blurred: Blur пришёл, пока ждали выбора
	blurred bool
}

func NewField(catalog []string) *Field {
	return &Field{catalog: catalog}
}

// SetCatalog заменяет каталог (после загрузки городов)
func (f *Field) SetCatalog(catalog []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalog = catalog
	f.refresh()
}

// Input обновляет значение поля и пересчитывает подсказки
func (f *Field) Input(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = value
	f.clearPending()
	f.refresh()
}

func (f *Field) refresh() {
	f.suggestions = Search(f.catalog, f.value)
	f.visible = len(f.suggestions) > 0
}

// PointerDown отмечает, что пользователь начал выбор подсказки
func (f *Field) PointerDown() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.visible {
		return
	}
	f.pending = true
}

// Select фиксирует выбранное значение и скрывает подсказки
func (f *Field) Select(choice string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = choice
	f.suggestions = nil
	f.visible = false
	f.clearPending()
}

// Blur вызывается при потере фокуса
func (f *Field) Blur() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pending {
		f.blurred = true
		return
	}
	f.visible = false
}

// PointerCancel вызывается, когда нажатие на подсказку закончилось без Select
func (f *Field) PointerCancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.blurred {
		f.visible = false
	}
	f.clearPending()
}

func (f *Field) clearPending() {
	f.pending = false
	f.blurred = false
}

// Suggestions текущие подсказки; пусто, если список скрыт
func (f *Field) Suggestions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.visible {
		return nil
	}
	out := make([]string, len(f.suggestions))
	copy(out, f.suggestions)
	return out
}

func (f *Field) Visible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible
}

func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}
