package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/LojasRealce/api-carnes/internal/armazenamento"
	"github.com/LojasRealce/api-carnes/internal/auth"
	"github.com/LojasRealce/api-carnes/internal/carne"
	"github.com/LojasRealce/api-carnes/internal/impressao"
	"github.com/LojasRealce/api-carnes/internal/parcela"
	"github.com/LojasRealce/api-carnes/internal/usuario"
	"github.com/LojasRealce/api-carnes/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	database, err := db.ConnectDataBase()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&carne.Carne{},
		&parcela.Parcela{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Serviço e handlers
	repo := armazenamento.NewPostgres(database)
	carneService := carne.NewService(repo)
	carneHandler := carne.NewHandler(carneService)
	impressaoHandler := impressao.NewHandler(carneService)
	usuarioHandler := usuario.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.CriarUsuario).Methods("POST")

	// Rotas de carnês (autenticadas)
	api := r.PathPrefix("/carnes").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("", carneHandler.Criar).Methods("POST")
	api.HandleFunc("", carneHandler.Listar).Methods("GET")
	api.HandleFunc("/relatorio", impressaoHandler.Relatorio).Methods("GET")
	api.HandleFunc("/{id}", carneHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/{id}", carneHandler.Editar).Methods("PUT")
	// exclusão de carnê só para gerentes
	api.Handle("/{id}", auth.RequireAdmin(http.HandlerFunc(carneHandler.Excluir))).Methods("DELETE")
	api.HandleFunc("/{id}/resumo", carneHandler.Resumo).Methods("GET")
	api.HandleFunc("/{id}/impressao", impressaoHandler.ImprimirCarne).Methods("GET")
	api.HandleFunc("/{id}/pagamento", carneHandler.QuitarCarne).Methods("POST")
	api.HandleFunc("/{id}/parcelas/{numero}", carneHandler.EditarParcela).Methods("PUT")
	api.HandleFunc("/{id}/parcelas/{numero}/pagamento", carneHandler.PagarParcela).Methods("POST")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Printf("Servidor rodando em http://localhost:%s\n", porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
