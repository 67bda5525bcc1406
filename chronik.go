package main

import (
	"bytes"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/wansing/chronik/backend"
	"github.com/wansing/chronik/core"
	"github.com/wansing/chronik/filestore"
	"github.com/wansing/chronik/sqldb"
	"github.com/wansing/chronik/sqldb/mysql"
	"github.com/wansing/chronik/sqldb/sqlite3"
	"github.com/wansing/chronik/util"
	"github.com/xo/dburl"
	"golang.org/x/crypto/ssh/terminal"
)

func init() {
	log.SetFlags(0) // no log prefixes, on most systems systemd-journald adds them
}

func main() {

	// config file values are flag defaults, command line wins

	conf, err := util.Ini("chronik.ini")
	if err != nil {
		conf = map[string]string{}
	}
	var def = func(key, fallback string) string {
		if value, ok := conf[key]; ok {
			return value
		}
		return fallback
	}

	var dbDefault = def("db", "sqlite3:chronik.sqlite3?_busy_timeout=10000&_journal=WAL&_sync=NORMAL&cache=shared")
	var dbArg string // is in both FlagSets

	// default FlagSet

	flag.StringVar(&dbArg, "db", dbDefault, "sql database url, see github.com/xo/dburl")
	var listenAddr = flag.String("listen", def("listen", "127.0.0.1:8080"), "serve HTTP content at this `ip:port`")
	var uploadDir = flag.String("uploads", def("uploads", "uploads"), "store attachment files in this `folder`")

	// init FlagSet

	var initFlags = flag.NewFlagSet("init", flag.ExitOnError)

	initFlags.StringVar(&dbArg, "db", dbDefault, "sql database url, see github.com/xo/dburl")
	var initName = initFlags.String("user", "", "display `name` of the new user")
	var initEmail = initFlags.String("email", "", "email `address` of the new user")

	if len(os.Args) > 1 && os.Args[1] == "init" {
		initFlags.Parse(os.Args[2:])
	} else {
		flag.Parse()
	}

	// database

	dbURL, err := dburl.Parse(dbArg)
	if err != nil {
		log.Printf("could not parse database url: %v", err)
		return
	}

	sqlDB, err := sql.Open(dbURL.Driver, dbURL.DSN)
	if err != nil {
		log.Printf("could not open sql database: %v", err)
		return
	}

	if err = sqlDB.Ping(); err != nil {
		log.Printf("could not ping sql database: %v", err)
		return
	}

	log.Printf("using database %s", dbURL.String())

	// assemble stuff

	var sessionStore scs.Store
	switch dbURL.Driver {
	case "mysql":
		sessionStore = mysql.NewSessionStore(sqlDB)
	case "sqlite3":
		sessionStore = sqlite3.NewSessionStore(sqlDB)
	default:
		log.Printf("unknown database backend: %s", dbURL.Driver)
		return
	}

	db := &core.CoreDB{}
	db.Init(sessionStore)
	db.ArticleDB = sqldb.NewArticleDB(sqlDB)
	db.UserDB = sqldb.NewUserDB(sqlDB)
	db.SqlDB = sqlDB

	db.Uploads, err = filestore.NewStore(*uploadDir)
	if err != nil {
		log.Printf("could not create upload folder: %v", err)
		return
	}

	defer func() {
		log.Println("closing database")
		sqlDB.Close()
	}()

	// init

	if initFlags.Parsed() {
		if *initName != "" && *initEmail != "" {
			insertUser(db, *initName, *initEmail)
		} else {
			initFlags.Usage()
		}
		return
	}

	listen(db, *listenAddr)
}

func insertUser(db *core.CoreDB, name string, email string) {

	fmt.Printf("password for user %s: ", email)
	pass1, err := terminal.ReadPassword(0)
	fmt.Println()
	if err != nil {
		log.Printf("error reading password: %v", err)
		return
	}

	fmt.Printf("repeat password: ")
	pass2, err := terminal.ReadPassword(0)
	fmt.Println()
	if err != nil {
		log.Printf("error reading password: %v", err)
		return
	}

	if !bytes.Equal(pass1, pass2) {
		log.Printf("passwords don't match")
		return
	}

	if _, err := db.InsertUser(name, email, string(pass1)); err != nil {
		log.Printf("error creating user %s: %v", email, err)
		return
	}
}

func listen(db *core.CoreDB, addr string) {

	var waitingControllers sync.WaitGroup

	var router = backend.NewRouter(db)

	var handler = http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			waitingControllers.Add(1)
			defer waitingControllers.Done()
			router.ServeHTTP(w, req)
		},
	)

	// listener and listen

	sigintChannel := make(chan os.Signal, 1)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Println(err)
		return
	}

	log.Printf("listening to %s", addr)

	httpSrv := &http.Server{
		Handler:      db.SessionManager.LoadAndSave(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := httpSrv.Serve(listener); err != nil {

			// don't panic, we want a graceful shutdown
			if err != http.ErrServerClosed {
				log.Printf("error listening: %v", err)
			}

			// ensure graceful shutdown
			sigintChannel <- os.Interrupt
		}
	}()

	// graceful shutdown

	signal.Notify(sigintChannel, os.Interrupt, syscall.SIGTERM) // SIGINT (Interrupt) or SIGTERM
	<-sigintChannel

	log.Println("shutting down")
	httpSrv.Close()

	waitingControllers.Wait()
}
