package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/jonathan/career-analyzer/internal/types"
)

func TestDetectRoleType(t *testing.T) {
	tests := []struct {
		name  string
		title string
		text  string
		want  types.RoleType
	}{
		{"backend engineer", "Senior Backend Engineer", "", types.RoleTypeTechnical},
		{"ux designer", "UX Designer", "", types.RoleTypeDesign},
		{"product designer beats technical", "Product Designer", "", types.RoleTypeDesign},
		{"ml engineer beats technical", "ML Engineer", "", types.RoleTypeData},
		{"data scientist", "Data Scientist", "", types.RoleTypeData},
		{"product manager", "Product Manager", "", types.RoleTypeProduct},
		{"scrum master", "Scrum Master", "", types.RoleTypeProduct},
		{"keyword in body", "Vaga Tech", "procuramos desenvolvedor backend", types.RoleTypeTechnical},
		{"unknown defaults technical", "Office Assistant", "", types.RoleTypeTechnical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &types.JobPosting{ID: "j1", Title: tt.title, RawText: tt.text}
			assert.Equal(t, tt.want, DetectRoleType(job))
		})
	}
}

func TestDetectRoleTypeWordBoundaries(t *testing.T) {
	// "ui" must not match inside "building", nor "po" patterns inside
	// "position".
	job := &types.JobPosting{ID: "j1", Title: "Generalist", RawText: "building guidance for the position"}
	assert.Equal(t, types.RoleTypeTechnical, DetectRoleType(job))
}

func TestWeightsSumTo100(t *testing.T) {
	for _, role := range RoleTypes() {
		assert.InDelta(t, 100.0, WeightsForRole(role).Total(), 1e-9, "role %s", role)
	}
}

func TestWeightsForRoleUnknownFallsBack(t *testing.T) {
	assert.Equal(t, WeightsForRole(types.RoleTypeTechnical), WeightsForRole(types.RoleType("unknown")))
}

func TestEducationRank(t *testing.T) {
	assert.Equal(t, 6, EducationRank("PhD in Computer Science"))
	assert.Equal(t, 6, EducationRank("Doutorado em Engenharia"))
	assert.Equal(t, 5, EducationRank("MBA"))
	assert.Equal(t, 5, EducationRank("Mestrado em Sistemas"))
	assert.Equal(t, 4, EducationRank("Bachelor of Science"))
	assert.Equal(t, 4, EducationRank("Bacharelado em Ciência da Computação"))
	assert.Equal(t, 3, EducationRank("Tecnólogo em Análise de Sistemas"))
	assert.Equal(t, 2, EducationRank("Full-Stack Bootcamp"))
	assert.Equal(t, 1, EducationRank("Ensino Médio Completo"))
	assert.Equal(t, 0, EducationRank("Self-taught"))
}

func TestHighestEducationRank(t *testing.T) {
	assert.Equal(t, 5, HighestEducationRank([]string{"Bachelor of Arts", "Mestrado"}))
	assert.Equal(t, 0, HighestEducationRank(nil))
}

func TestIsLayoffCompany(t *testing.T) {
	assert.True(t, IsLayoffCompany("Google"))
	assert.True(t, IsLayoffCompany("google"))
	assert.True(t, IsLayoffCompany("Google Brasil"))
	assert.True(t, IsLayoffCompany("Mercado Livre Brasil"))
	assert.True(t, IsLayoffCompany("Nubank"))
	// "box" is in the set but must not match inside "dropbox-like" names.
	assert.True(t, IsLayoffCompany("Dropbox"))
	assert.False(t, IsLayoffCompany("Boxware Solutions"))
	assert.False(t, IsLayoffCompany("Acme Corp"))
	assert.False(t, IsLayoffCompany(""))
}

func TestInLayoffWindow(t *testing.T) {
	assert.False(t, InLayoffWindow(2021))
	assert.True(t, InLayoffWindow(2022))
	assert.True(t, InLayoffWindow(2024))
	assert.False(t, InLayoffWindow(2025))
}

func TestDetectContractType(t *testing.T) {
	assert.Equal(t, types.ContractFreelancer, DetectContractType("Freelancer Designer", "Self-employed"))
	assert.Equal(t, types.ContractPJ, DetectContractType("Desenvolvedor PJ", "Acme"))
	assert.Equal(t, types.ContractPJ, DetectContractType("Consultant", "Big Consulting"))
	assert.Equal(t, types.ContractPJ, DetectContractType("Desenvolvedora", "Consultoria XYZ"))
	assert.Equal(t, types.ContractCLT, DetectContractType("Analista CLT", "Empresa"))
	assert.Equal(t, types.ContractUnknown, DetectContractType("Engineer", "Acme"))
	// Freelancer wins over the contractor keyword set.
	assert.Equal(t, types.ContractFreelancer, DetectContractType("Freelance Consultant", ""))
}

func TestDetectStartupStage(t *testing.T) {
	assert.Equal(t, types.StageSeriesA, DetectStartupStage("Engineer", "TechStartup (Series A)"))
	assert.Equal(t, types.StageSeriesB, DetectStartupStage("Engineer", "Foo, série B startup"))
	assert.Equal(t, types.StageLate, DetectStartupStage("Engineer", "Unicorn Startup Inc"))
	assert.Equal(t, types.StageEarly, DetectStartupStage("Engineer", "Seed-stage fintech"))
	assert.Equal(t, types.StageEarly, DetectStartupStage("Founding Engineer", "Stealth"))
	assert.Equal(t, types.StageUnknown, DetectStartupStage("Engineer", "Enterprise Corp"))
}

func TestStageReductionFactor(t *testing.T) {
	assert.Equal(t, 0.3, StageReductionFactor(types.StageEarly))
	assert.Equal(t, 0.5, StageReductionFactor(types.StageSeriesA))
	assert.Equal(t, 0.75, StageReductionFactor(types.StageSeriesB))
	assert.Equal(t, 1.0, StageReductionFactor(types.StageLate))
	assert.Equal(t, 1.0, StageReductionFactor(types.StageUnknown))
}

func TestTitleLevel(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		{"Estagiário de Desenvolvimento", 1},
		{"Junior Developer", 2},
		{"Desenvolvedor Júnior", 2},
		{"Analista de Sistemas", 3},
		{"Desenvolvedor Pleno", 3},
		{"Software Engineer", 3},
		{"Senior Software Engineer", 4},
		{"Desenvolvedora Sênior", 4},
		{"Especialista em Dados", 4},
		{"Tech Lead", 5},
		{"Staff Engineer", 5},
		{"Coordenador de Engenharia", 5},
		{"Engineering Manager", 6},
		{"Gerente de Produto", 6},
		{"Diretor de Tecnologia", 7},
		{"CTO", 8},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleLevel(tt.title))
		})
	}
}

func TestTitleLevelHighestKeywordWins(t *testing.T) {
	// "Senior Engineering Manager" carries both senior (4) and manager (6).
	assert.Equal(t, 6, TitleLevel("Senior Engineering Manager"))
}

func TestLearningResources(t *testing.T) {
	assert.Len(t, LearningResources("python", "python"), 3)
	assert.Contains(t, LearningResources("go", "")[0], "go")
	assert.Contains(t, LearningResources("kubernetes", "")[0], "Kubernetes")
	assert.Contains(t, LearningResources("aws", "")[1], "AWS")
	assert.Contains(t, LearningResources("pytorch", "")[0], "machine learning")
	generic := LearningResources("cobol", "")
	assert.Len(t, generic, 3)
	assert.Contains(t, generic[0], "cobol")
}
