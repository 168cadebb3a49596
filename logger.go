package xorlist

//go:generate mockgen -destination=internal/mocks/logger.go -package=mocks github.com/sirkon/xorlist Logger

// Logger абстракция для наблюдения за жизненным циклом узлов.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// NodeAllocated узел id размещён в списке.
	NodeAllocated(id Identity)
	// NodeReleased узел id удалён из списка, его ячейка освобождена.
	NodeReleased(id Identity)
	// ListSplit узлы от head до tail переданы во владение новому списку.
	ListSplit(head, tail Identity)
}

type nopLogger struct{}

func (nopLogger) NodeAllocated(Identity)       {}
func (nopLogger) NodeReleased(Identity)        {}
func (nopLogger) ListSplit(Identity, Identity) {}
