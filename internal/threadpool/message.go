package threadpool

// Job is a unit of work executed by exactly one worker.
type Job interface {
	Run()
}

// JobFunc adapts a plain function to the Job interface.
type JobFunc func()

func (f JobFunc) Run() {
	f()
}

type Kind uint8

const (
	KindExecute Kind = iota
	KindQuit
)

func (k Kind) String() string {
	switch k {
	case KindExecute:
		return "execute"
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Message is what flows through the queue: a job to run or a stop signal.
type Message struct {
	Kind Kind
	Job  Job
}

func Execute(job Job) Message {
	return Message{Kind: KindExecute, Job: job}
}

func Quit() Message {
	return Message{Kind: KindQuit}
}
