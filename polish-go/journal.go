package polish_go

import (
	"time"

	"github.com/segmentio/fasthash/fnv1a"
	"zombiezen.com/go/sqlite"
)

// JournalEntry is one executed expression command.
type JournalEntry struct {
	ID          int64
	Command     string
	Expression  string
	Outcome     string
	Success     bool
	Elapsed     time.Duration
	Fingerprint uint64
}

// Journal records the commands of one session in an in-memory SQLite
// database. Nothing survives the process.
type Journal struct {
	conn_             *sqlite.Conn
	stmtInsert_       *sqlite.Stmt
	stmtCountByPrint_ *sqlite.Stmt
	stmtList_         *sqlite.Stmt
}

func Fingerprint(command, expression string) uint64 {
	h := fnv1a.HashString64(command)
	return fnv1a.AddString64(h, "\x00"+expression)
}

func OpenJournal() (*Journal, error) {
	ret := Journal{}
	var err error
	ret.conn_, err = sqlite.OpenConn(":memory:", sqlite.OpenReadWrite|sqlite.OpenCreate)
	if err != nil {
		return nil, err
	}
	stmt, err := ret.conn_.Prepare("CREATE TABLE IF NOT EXISTS journal (`id` INTEGER PRIMARY KEY, " +
		"`command` TEXT, `expression` TEXT, `outcome` TEXT, `success` INTEGER, " +
		"`elapsed_us` INTEGER, `fingerprint` INTEGER);")
	if err != nil {
		ret.conn_.Close()
		return nil, err
	}
	if _, err := stmt.Step(); err != nil {
		ret.conn_.Close()
		return nil, err
	}
	ret.stmtInsert_, err = ret.conn_.Prepare("INSERT INTO journal (`command`, `expression`, `outcome`, " +
		"`success`, `elapsed_us`, `fingerprint`) VALUES " +
		"($command, $expression, $outcome, $success, $elapsed_us, $fingerprint);")
	if err != nil {
		ret.conn_.Close()
		return nil, err
	}
	ret.stmtCountByPrint_, err = ret.conn_.Prepare("SELECT count(*) FROM journal WHERE `fingerprint` = $fingerprint;")
	if err != nil {
		ret.conn_.Close()
		return nil, err
	}
	ret.stmtList_, err = ret.conn_.Prepare("SELECT `id`, `command`, `expression`, `outcome`, `success`, " +
		"`elapsed_us`, `fingerprint` FROM journal ORDER BY `id` ASC;")
	if err != nil {
		ret.conn_.Close()
		return nil, err
	}
	return &ret, nil
}

func (this *Journal) Close() error {
	return this.conn_.Close()
}

// / SeenBefore counts earlier entries with the same command and expression.
func (this *Journal) SeenBefore(command, expression string) (int, error) {
	defer this.stmtCountByPrint_.Reset()
	this.stmtCountByPrint_.SetInt64("$fingerprint", int64(Fingerprint(command, expression)))
	hasRow, err := this.stmtCountByPrint_.Step()
	if err != nil {
		return 0, err
	}
	if !hasRow {
		return 0, nil
	}
	return this.stmtCountByPrint_.ColumnInt(0), nil
}

func (this *Journal) Record(entry *JournalEntry) error {
	defer this.stmtInsert_.Reset()
	entry.Fingerprint = Fingerprint(entry.Command, entry.Expression)
	this.stmtInsert_.SetText("$command", entry.Command)
	this.stmtInsert_.SetText("$expression", entry.Expression)
	this.stmtInsert_.SetText("$outcome", entry.Outcome)
	this.stmtInsert_.SetBool("$success", entry.Success)
	this.stmtInsert_.SetInt64("$elapsed_us", entry.Elapsed.Microseconds())
	this.stmtInsert_.SetInt64("$fingerprint", int64(entry.Fingerprint))
	if _, err := this.stmtInsert_.Step(); err != nil {
		return err
	}
	entry.ID = this.conn_.LastInsertRowID()
	return nil
}

// / Entries returns every entry, oldest first.
func (this *Journal) Entries() ([]*JournalEntry, error) {
	defer this.stmtList_.Reset()
	var ret []*JournalEntry
	for {
		hasRow, err := this.stmtList_.Step()
		if err != nil {
			return nil, err
		}
		if !hasRow {
			break
		}
		ret = append(ret, &JournalEntry{
			ID:          this.stmtList_.GetInt64("id"),
			Command:     this.stmtList_.GetText("command"),
			Expression:  this.stmtList_.GetText("expression"),
			Outcome:     this.stmtList_.GetText("outcome"),
			Success:     this.stmtList_.GetInt64("success") != 0,
			Elapsed:     time.Duration(this.stmtList_.GetInt64("elapsed_us")) * time.Microsecond,
			Fingerprint: uint64(this.stmtList_.GetInt64("fingerprint")),
		})
	}
	return ret, nil
}
