package handlers

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Each pair is an English catalog key and its translation.
var translations = map[language.Tag][][2]string{
	language.BrazilianPortuguese: {
		{"Task management for small teams", "Sistema de Gerenciamento de Tarefas"},
		{"Welcome", "Bem vindo"},
		{"Use --help to see the available commands", "Use --help para ver comandos disponíveis"},
		{"Success", "Sucesso"},
		{"Team created successfully!", "Time criado com sucesso!"},
		{"Team deleted successfully!", "Time removido com sucesso!"},
		{"Employee created successfully!", "Funcionário criado com sucesso!"},
		{"Employee updated successfully!", "Funcionário atualizado com sucesso!"},
		{"Task created successfully!", "Tarefa criada com sucesso!"},
		{"Task updated successfully!", "Tarefa atualizada com sucesso!"},
		{"Task deleted successfully!", "Tarefa removida com sucesso!"},
		{"No teams found.", "Nenhum time encontrado."},
		{"No employees found.", "Nenhum funcionário encontrado."},
		{"No tasks found.", "Nenhuma tarefa encontrada."},
		{"Teams", "Lista de Times"},
		{"Employees", "Lista de Funcionários"},
		{"Tasks", "Lista de Tarefas"},
		{"Task statistics", "Estatísticas de Tarefas"},
		{"Name", "Nome"},
		{"Description", "Descrição"},
		{"Email", "Email"},
		{"Team", "Time"},
		{"Team ID", "Time ID"},
		{"Title", "Título"},
		{"Status", "Status"},
		{"Priority", "Prioridade"},
		{"Owner", "Responsável"},
		{"Unassigned", "Não atribuído"},
		{"Employees count", "Funcionários"},
		{"Tasks count", "Tarefas"},
		{"Count", "Quantidade"},
		{"Total", "Total"},
		{"Low", "Baixa"},
		{"Medium", "Media"},
		{"High", "Alta"},
		{"Pending", "Pendente"},
		{"In Progress", "Em Progresso"},
		{"Completed", "Finalizada"},
		{"Error creating team", "Erro ao criar time"},
		{"Error listing teams", "Erro ao listar times"},
		{"Error fetching team", "Erro ao buscar time"},
		{"Error deleting team", "Erro ao remover time"},
		{"Error creating employee", "Erro ao criar funcionário"},
		{"Error listing employees", "Erro ao listar funcionários"},
		{"Error fetching employee", "Erro ao buscar funcionário"},
		{"Error updating employee", "Erro ao atualizar funcionário"},
		{"Error creating task", "Erro ao criar tarefa"},
		{"Error listing tasks", "Erro ao listar tarefas"},
		{"Error fetching task", "Erro ao buscar tarefa"},
		{"Error updating task", "Erro ao atualizar tarefa"},
		{"Error deleting task", "Erro ao remover tarefa"},
		{"Error computing statistics", "Erro ao calcular estatísticas"},
		{"Error exporting tasks", "Erro ao exportar tarefas"},
		{"Error opening database", "Erro ao abrir o banco de dados"},
		{"invalid input: %v", "entrada inválida: %v"},
		{"invalid email: %v", "email inválido: %v"},
		{"already registered: %v", "já cadastrado: %v"},
		{"not found: %v", "não encontrado: %v"},
		{"storage failure: %v", "falha de armazenamento: %v"},
		{"error: %v", "erro: %v"},
	},
}

var supportedLanguages = []language.Tag{language.English, language.BrazilianPortuguese}

func init() {
	for tag, messages := range translations {
		for _, m := range messages {
			_ = message.SetString(tag, m[0], m[1])
		}
	}
}

// NewPrinter returns a printer for the closest supported language.
func NewPrinter(lang string) *message.Printer {
	matcher := language.NewMatcher(supportedLanguages)
	tag, _ := language.MatchStrings(matcher, lang)
	return message.NewPrinter(tag)
}

// lookup translates a fixed catalog key. Keys without an entry print as given.
func lookup(p *message.Printer, key string) string {
	return p.Sprintf(message.Key(key, key))
}
