package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const landingMarkdown = `# Transforme sua paixão por conteúdo em renda com o NEXA UGC

Aprenda, conecte-se com marcas e monetize seu conteúdo.

## Por que criar o NEXA UGC

O mundo do marketing digital está em constante evolução, e o conteúdo gerado pelo usuário (UGC) se tornou uma das estratégias mais poderosas para marcas conectarem-se autenticamente com seu público.

No NEXA UGC, você não apenas aprende a criar conteúdo de qualidade, mas também descobre como transformar essa habilidade em uma fonte de renda sustentável e escalável.

> Julia Lima Borges, Fundadora NEXA UGC

## Como funciona

1. **Cadastre-se**: acesse nossa plataforma e comece sua jornada de transformação digital hoje mesmo.
2. **Encontre campanhas**: descubra oportunidades incríveis com marcas que se alinham com seu perfil e valores.
3. **Crie conteúdo autêntico**: desenvolva conteúdos únicos e envolventes que geram resultados reais para as marcas.
4. **Receba pagamentos**: monetize sua criatividade e transforme sua paixão em uma fonte de renda consistente.

## Benefícios

- Comunicação direta com marcas
- Proteção de direitos autorais
- Pagamentos seguros com PayPal
- Acesso gratuito para influência de todos
- Formatos de anúncios
- Campanhas exclusivas

## Preços

| Plano | Preço | Inclui |
|---|---|---|
| Acesso ao curso | Gratuito | Aulas básicas, materiais de apoio, comunidade no Discord, suporte básico |
| CRIADORES | R$ 49,90 por mês | Masterclass completa de UGC, templates exclusivos, lives mensais, conexão direta com marcas |

## Comunidade

> O NEXA UGC transformou completamente minha abordagem para criação de conteúdo. Em apenas 3 meses, consegui aumentar minha renda em 300%!
> **Sarah Chen**

> Incrível como o curso é detalhado e prático. Aprendi estratégias que nunca imaginei e agora trabalho com marcas dos meus sonhos.
> **Ana Ferraz**

> Melhor investimento que já fiz! O NEXA UGC não é só um curso, é uma transformação completa na forma de encarar o mercado digital.
> **Maria Santos**

## Pronto para transformar seu conteúdo em uma carreira?

Junte-se a centenas de criadores que já estão monetizando seu potencial com o NEXA UGC.

---

**Links básicos**: Sobre o NEXA · Como funciona · Preços · Depoimentos
**Suporte**: Central de ajuda · Contato · Status do sistema · Problema do repórter
**Jurídico**: Termos de uso · Política de privacidade · Biscoitos · LGPD
`

// landingScreen is the marketing page. It scrolls and leads to /auth.
type landingScreen struct {
	d        *deps
	vp       viewport.Model
	width    int
	height   int
	dark     bool
	rendered bool
}

func newLandingScreen(d *deps) *landingScreen {
	return &landingScreen{d: d, vp: viewport.New(0, 0)}
}

func (s *landingScreen) Init() tea.Cmd { return nil }

func (s *landingScreen) Typing() bool { return false }

func (s *landingScreen) SetSize(width, height int) {
	dark := s.d.dark()
	footer := lipgloss.Height(s.footer())
	s.vp.Width = width
	s.vp.Height = max(height-footer, 1)
	if s.rendered && width == s.width && dark == s.dark {
		s.height = height
		return
	}
	s.width, s.height, s.dark = width, height, dark
	s.vp.SetContent(renderMarkdown(landingMarkdown, width-2, dark))
	s.rendered = true
}

func (s *landingScreen) HandleAction(act Action) (bool, tea.Cmd) {
	switch act {
	case ActConfirm:
		return true, navigate(pathAuth)
	case ActNavigateUp:
		s.vp.LineUp(1)
	case ActNavigateDown:
		s.vp.LineDown(1)
	case ActPageUp:
		s.vp.ViewUp()
	case ActPageDown:
		s.vp.ViewDown()
	case ActScrollTop:
		s.vp.GotoTop()
	case ActScrollBottom:
		s.vp.GotoBottom()
	case ActOpenLink:
		if s.d.cfg.SiteURL == "" {
			return true, status("site_url não configurado")
		}
		if err := s.d.openURL(s.d.cfg.SiteURL); err != nil {
			return true, statusErr("Falha ao abrir o site: " + err.Error())
		}
		return true, status("Abrindo " + s.d.cfg.SiteURL)
	case ActCopyLink:
		note, failed := copyText(s.d.cfg.SiteURL, "Link")
		if failed {
			return true, statusErr(note)
		}
		return true, status(note)
	default:
		return false, nil
	}
	return true, nil
}

func (s *landingScreen) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return cmd
}

func (s *landingScreen) footer() string {
	cta := optionActiveStyle.Render("Quero começar")
	hint := helpStyle.Render("enter começar · ↑/↓ rolar · o abrir site · ? atalhos")
	return lipgloss.JoinVertical(lipgloss.Left, cta, hint)
}

func (s *landingScreen) View() string {
	var b strings.Builder
	b.WriteString(s.vp.View())
	b.WriteString("\n")
	b.WriteString(s.footer())
	return b.String()
}
