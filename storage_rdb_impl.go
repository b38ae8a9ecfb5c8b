package gomamayo

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
)

func NewDBClient(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

// MySQLDSN はMySQL用の接続文字列を返す
func (c *DBConfig) MySQLDSN() string {
	m := mysql.NewConfig()
	m.User = c.User
	m.Passwd = c.Password
	m.Net = "tcp"
	m.Addr = fmt.Sprintf("%s:%s", c.Addr, c.Port)
	m.DBName = c.DB
	return m.FormatDSN()
}

type StorageRdbImpl struct {
	DB  *sqlx.DB
	now func() time.Time
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB:  db,
		now: time.Now,
	}
}

var schemas = map[string]string{
	"mysql": `create table if not exists detections (
		id bigint unsigned not null auto_increment primary key,
		phrase text not null,
		readings text not null,
		ary int not null,
		degree int not null,
		created_at bigint not null,
		index idx_degree (degree)
	)`,
	"sqlite": `create table if not exists detections (
		id integer primary key autoincrement,
		phrase text not null,
		readings text not null,
		ary integer not null,
		degree integer not null,
		created_at integer not null
	)`,
}

// Migrate は記録用のテーブルを作成する
func (s *StorageRdbImpl) Migrate() error {
	schema, ok := schemas[s.DB.DriverName()]
	if !ok {
		return fmt.Errorf("error: unsupported driver %s", s.DB.DriverName())
	}
	_, err := s.DB.Exec(schema)
	return err
}

func (s *StorageRdbImpl) CountDetections() (int, error) {
	var count int
	row := s.DB.QueryRow(`select count(*) from detections`)
	if err := row.Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (s *StorageRdbImpl) GetAllDetections() ([]Detection, error) {
	var encoded []encodedDetection
	if err := s.DB.Select(&encoded, `select * from detections order by id`); err != nil {
		return nil, err
	}
	return decode(encoded)
}

func (s *StorageRdbImpl) GetDetections(ids []DetectionID) ([]Detection, error) {
	if len(ids) == 0 {
		return []Detection{}, nil
	}
	intIDs := make([]uint64, len(ids))
	for i, id := range ids {
		intIDs[i] = uint64(id)
	}

	query, args, err := sqlx.In(`select * from detections where id in (?) order by id`, intIDs)
	if err != nil {
		return nil, err
	}
	var encoded []encodedDetection
	if err = s.DB.Select(&encoded, s.DB.Rebind(query), args...); err != nil {
		return nil, err
	}
	return decode(encoded)
}

func (s *StorageRdbImpl) GetGomamayoDetections(minDegree int) ([]Detection, error) {
	if minDegree < 1 {
		minDegree = 1
	}
	var encoded []encodedDetection
	if err := s.DB.Select(&encoded, s.DB.Rebind(`select * from detections where degree >= ? order by degree desc, id`), minDegree); err != nil {
		return nil, err
	}
	return decode(encoded)
}

func (s *StorageRdbImpl) AddDetection(detection Detection) (DetectionID, error) {
	if detection.CreatedAt.IsZero() {
		detection.CreatedAt = s.now()
	}
	e, err := encode(detection)
	if err != nil {
		return 0, err
	}

	res, err := s.DB.NamedExec(`insert into detections (phrase, readings, ary, degree, created_at)
		values (:phrase, :readings, :ary, :degree, :created_at)`, e)
	if err != nil {
		return 0, err
	}

	insertedID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return DetectionID(insertedID), nil
}

// 読みのリストはJSONにして1カラムに格納する
type encodedDetection struct {
	ID        DetectionID `db:"id"`
	Phrase    string      `db:"phrase"`
	Readings  string      `db:"readings"`
	Ary       int         `db:"ary"`
	Degree    int         `db:"degree"`
	CreatedAt int64       `db:"created_at"` // UNIX時間(秒)
}

func encode(d Detection) (encodedDetection, error) {
	readings := d.Readings
	if readings == nil {
		readings = []string{}
	}
	b, err := json.Marshal(readings)
	if err != nil {
		return encodedDetection{}, err
	}
	return encodedDetection{
		ID:        d.ID,
		Phrase:    d.Phrase,
		Readings:  string(b),
		Ary:       d.Ary,
		Degree:    d.Degree,
		CreatedAt: d.CreatedAt.Unix(),
	}, nil
}

func decode(encoded []encodedDetection) ([]Detection, error) {
	detections := make([]Detection, len(encoded))
	for i, e := range encoded {
		var readings []string
		if err := json.Unmarshal([]byte(e.Readings), &readings); err != nil {
			return nil, fmt.Errorf("decode readings of detection %d: %w", e.ID, err)
		}
		detections[i] = Detection{
			ID:        e.ID,
			Phrase:    e.Phrase,
			Readings:  readings,
			Ary:       e.Ary,
			Degree:    e.Degree,
			CreatedAt: time.Unix(e.CreatedAt, 0),
		}
	}
	return detections, nil
}
