package arena

// Identity идентификатор занятой ячейки арены.
// Младшие 32 бита хранят номер ячейки плюс один, старшие — поколение ячейки.
// Нулевое значение никогда не выдаётся для живой ячейки.
type Identity uint64

// Nil отсутствие узла.
const Nil Identity = 0

func makeIdentity(index, gen uint32) Identity {
	return Identity(uint64(gen)<<32 | uint64(index+1))
}

func (id Identity) index() uint32 {
	return uint32(id) - 1
}

func (id Identity) gen() uint32 {
	return uint32(id >> 32)
}
